// Package grid implements the Cost Grid: a dense 2-D array of non-negative
// integer contention counts, indexed (x,y), shared read/write across the
// re-routing engine's worker pool.
//
// What:
//
//   - CostGrid.Read(c) returns the current contention count at cell c.
//   - CostGrid.Stamp(path, delta) applies delta to every cell on a path.
//
// Concurrency:
//
//   - Every cell is backed by its own atomic.Int32 (spec.md §5, option 2:
//     per-cell atomic counters). stamp/read never block. Within a sweep,
//     concurrent workers may observe interleaved writes from other workers;
//     the heuristic accepts this (spec.md §7). The invariant
//     grid[x,y] == #paths through (x,y) is restored at every sweep boundary,
//     once the worker pool's barrier has returned.
//
// Why atomics over a single lock: core.Graph (this module's sibling package)
// already demonstrates the project's preference for fine-grained concurrent
// mutation — per-field RWMutexes plus an atomic edge-ID counter — over one
// coarse lock around the whole structure. A dense grid's natural
// extrapolation of that same preference is one atomic counter per cell.
//
// See: SPEC_FULL.md §"Concurrency discipline" and spec.md §4.2, §5.
package grid
