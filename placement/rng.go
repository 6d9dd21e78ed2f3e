package placement

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into an
// independent 64-bit seed using a SplitMix64-style avalanche finalizer —
// the same construction tsp/rng.go uses to decorrelate per-worker RNG
// streams from a single base seed. tsp's deriveSeed is unexported, so this
// package carries its own copy of the idiom rather than importing it.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// rngForWire returns an independent, deterministic RNG stream for the
// wire at index i, derived from seed. Same (seed, i) always yields the
// same stream, so RandomPlacement is reproducible across runs.
//
// Complexity: O(1).
func rngForWire(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}
