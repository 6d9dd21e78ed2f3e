package routecost

import (
	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// Evaluate returns the cost of routing w along candidate against g: the sum
// of g's values along candidate's cells, plus w's fixed route length
// (spec.md §4.3). The route-length term is applied to every candidate
// uniformly — spec.md §9 "Secondary term application" notes the reference
// applies it branch-dependently; since it is constant per wire it can never
// change which candidate is the argmin, so uniform application is the safe,
// resolved behavior.
//
// Complexity: O(L) where L is the Manhattan length of the candidate.
func Evaluate(g *grid.CostGrid, w *wire.Wire, candidate wire.Path) (int, error) {
	cells, err := wire.CellsFor(w.Start, w.End, candidate)
	if err != nil {
		return 0, err
	}
	sum, err := g.Sum(cells)
	if err != nil {
		return 0, err
	}

	return sum + w.RouteLen(), nil
}
