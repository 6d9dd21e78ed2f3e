// Package placement seeds every wire with its initial routed path before
// the re-routing engine runs, and stamps that path into a fresh CostGrid.
//
// The default seed is the fixed-corner L-shape: a wire routes through
// (end.X, start.Y), horizontal-then-vertical, unless its endpoints are
// already collinear, in which case it routes straight. This mirrors
// gridgraph.GridGraph's deterministic, row/col-ordered construction: no
// randomness in the default path, every wire seeded the same way every run.
//
// Seed is deliberately the only mandatory entry point; RandomPlacement,
// BuildTestSession and ShortestPathSeed are additive extras (a seeded
// per-wire corner choice using a SplitMix64-style RNG derivation in the
// manner of tsp/rng.go, a directly enumerated test scenario, and a
// dijkstra-guided seed) without changing what the engine
// receives: a *grid.CostGrid already consistently stamped and a slice of
// *wire.Wire already carrying a valid Path.
package placement
