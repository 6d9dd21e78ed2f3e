package router

import (
	"context"
	"math/rand"
	"sync"

	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/routecost"
	"github.com/katalvlaran/lvlath/wire"
)

// Run performs cfg.SweepCount sweeps over session.Wires, each sweep
// statically partitioning the wire index range across cfg.NumThreads
// workers (spec.md §5, chunk size ceil(num_wires/threads)).
//
// ctx is checked once between sweeps (never mid-sweep, so the grid
// invariant is never observed broken): a cancelled context stops before
// the next sweep starts and returns ctx.Err(). This is additive beyond
// spec.md §5's "no cancellation support" — the engine still always runs
// sweeps to completion when ctx is nil or never cancelled — and keeps
// the compute phase itself free of any blocking I/O, per §5.
//
// Complexity: O(N * sum of per-wire candidate evaluation cost).
func Run(ctx context.Context, session *Session, cfg Config) error {
	if session == nil {
		return ErrNilSession
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	workerRNGs := newWorkerRNGs(cfg.Seed, cfg.NumThreads)
	chunkSize := (len(session.Wires) + cfg.NumThreads - 1) / cfg.NumThreads
	if chunkSize == 0 {
		chunkSize = 1
	}

	for sweep := 0; sweep < cfg.SweepCount; sweep++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		var wg sync.WaitGroup
		for worker := 0; worker*chunkSize < len(session.Wires); worker++ {
			start := worker * chunkSize
			end := start + chunkSize
			if end > len(session.Wires) {
				end = len(session.Wires)
			}

			wg.Add(1)
			go func(chunk []*wire.Wire, rng *rand.Rand) {
				defer wg.Done()
				for _, w := range chunk {
					rerouteWire(session.Grid, w, cfg, rng)
				}
			}(session.Wires[start:end], workerRNGs[worker])
		}
		wg.Wait()
	}

	return nil
}

// rerouteWire implements one wire's step of spec.md §4.5: unstamp the
// current path, evaluate it (unstamped) as the incumbent, enumerate and
// score every candidate, optionally substitute a simulated-annealing
// draw, then install and restamp the winner.
//
// The current path is always unstamped before any evaluation runs (§9
// "Self-cost during search" — never compared against its own stale
// stamped cost) and is always restamped before this function returns,
// even though the engine never itself fails mid-step (spec.md §4.5's
// per-wire state machine has no terminal Unstamped state).
func rerouteWire(g *grid.CostGrid, w *wire.Wire, cfg Config, rng *rand.Rand) {
	origPath := w.Path
	curCells, err := wire.Cells(w)
	if err != nil {
		return
	}
	if err := g.Stamp(curCells, -1); err != nil {
		return
	}

	best := origPath
	bestCost, err := routecost.Evaluate(g, w, best)
	if err != nil {
		bestCost = 0
	}

	candidates := routecost.Enumerate(w)
	for _, c := range candidates {
		cost, err := routecost.Evaluate(g, w, c)
		if err != nil {
			continue
		}
		if cost < bestCost {
			best = c
			bestCost = cost
		}
	}

	if rng.Float64() < cfg.SAProb && cfg.SAInnerIters > 0 {
		best = saDraw(g, w, candidates, cfg.SAInnerIters, rng)
	}

	w.Path = best
	newCells, err := wire.Cells(w)
	if err != nil {
		// Restore the prior path rather than leave the grid permanently
		// short a stamp: the per-wire state machine has no terminal
		// unstamped state.
		w.Path = origPath
		newCells = curCells
	}
	_ = g.Stamp(newCells, +1)
}

// saDraw implements the resolved simulated-annealing behavior (§9 Open
// Question #1): draw saInnerIters uniformly random candidates from the
// already-enumerated family and keep the best of those draws — giving
// sa_inner_iters an observable effect instead of a single substitution.
func saDraw(g *grid.CostGrid, w *wire.Wire, candidates []wire.Path, saInnerIters int, rng *rand.Rand) wire.Path {
	best := candidates[rng.Intn(len(candidates))]
	bestCost, err := routecost.Evaluate(g, w, best)
	if err != nil {
		bestCost = 1<<62 - 1
	}

	for i := 1; i < saInnerIters; i++ {
		c := candidates[rng.Intn(len(candidates))]
		cost, err := routecost.Evaluate(g, w, c)
		if err != nil {
			continue
		}
		if cost < bestCost {
			best = c
			bestCost = cost
		}
	}

	return best
}
