package router

import (
	"errors"

	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// Sentinel errors for router operations.
var (
	// ErrNilSession indicates Run was called with a nil *Session.
	ErrNilSession = errors.New("router: session is nil")
	// ErrBadThreadCount indicates Config.NumThreads was non-positive.
	ErrBadThreadCount = errors.New("router: NumThreads must be >= 1")
	// ErrBadSweepCount indicates Config.SweepCount was negative.
	ErrBadSweepCount = errors.New("router: SweepCount must be >= 0")
	// ErrBadSAProb indicates Config.SAProb fell outside [0,1].
	ErrBadSAProb = errors.New("router: SAProb must be in [0,1]")
	// ErrBadSAInnerIters indicates Config.SAInnerIters was negative.
	ErrBadSAInnerIters = errors.New("router: SAInnerIters must be >= 0")
)

// Session is the Routing Session of spec.md §3: the grid and wire
// collection owned by the engine for its lifetime. Only the engine
// mutates it once Run has started.
type Session struct {
	Grid  *grid.CostGrid
	Wires []*wire.Wire
}

// NewSession wraps an already-seeded grid and wire slice (see the
// placement package) as a Session ready for Run.
func NewSession(g *grid.CostGrid, wires []*wire.Wire) *Session {
	return &Session{Grid: g, Wires: wires}
}

// Config is the engine's runtime configuration (spec.md §6), passed
// explicitly into Run rather than held as package state — matching
// dijkstra.Options/flow.FlowOptions's explicit-value style, adapted here
// to the fixed small field set the spec names.
type Config struct {
	// NumThreads is the static partition width (>= 1).
	NumThreads int
	// SweepCount is the number of full passes over all wires (>= 0).
	SweepCount int
	// SAProb is the per-wire, per-sweep probability of substituting a
	// simulated-annealing draw for the greedy argmin (in [0,1]).
	SAProb float64
	// SAInnerIters is how many uniformly random candidates a triggered SA
	// draw samples, keeping the best of those draws (>= 0; 0 degenerates
	// to "skip SA this draw, use the greedy pick").
	SAInnerIters int
	// Seed is the base seed for per-worker RNG streams. Zero is treated
	// as "use the default seed" (see deriveSeed/newWorkerRNGs in rng.go),
	// the same seed==0 policy tsp/rng.go uses.
	Seed int64
}

// DefaultConfig returns the spec's documented defaults: n=1, p=0.1, i=5,
// N=5 (spec.md §6).
func DefaultConfig() Config {
	return Config{
		NumThreads:   1,
		SweepCount:   5,
		SAProb:       0.1,
		SAInnerIters: 5,
	}
}

// validate checks cfg against the bounds spec.md §6 and §7 require,
// returning the first violated sentinel.
func (cfg Config) validate() error {
	if cfg.NumThreads < 1 {
		return ErrBadThreadCount
	}
	if cfg.SweepCount < 0 {
		return ErrBadSweepCount
	}
	if cfg.SAProb < 0 || cfg.SAProb > 1 {
		return ErrBadSAProb
	}
	if cfg.SAInnerIters < 0 {
		return ErrBadSAInnerIters
	}

	return nil
}
