// Package router implements the Re-routing Engine: the parallel,
// iterative sweep loop that improves every wire's path against a shared
// Cost Grid over a fixed number of sweeps.
//
// Each sweep statically partitions the wire index range into contiguous
// chunks, one per worker, mirroring core/concurrency_test.go's
// sync.WaitGroup fan-out/fan-in discipline. Workers run fully in
// parallel within a sweep; a wg.Wait() barrier stands between sweeps so
// the grid's invariant (cell count equals the number of routed path
// segments crossing that cell) holds at every sweep boundary, never
// mid-sweep (spec.md §5).
//
// Concurrency discipline: per-cell atomic counters (grid.CostGrid). See
// SPEC_FULL.md's "Concurrency discipline" section for the rationale.
package router
