package placement

import (
	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// Seed assigns every wire its default fixed-corner L-shape — horizontal
// through (end.X, start.Y) then vertical to end, or the degenerate straight
// path when the endpoints are already collinear — and stamps the result
// into g. This is the starting state the re-routing engine improves.
//
// Complexity: O(sum of route lengths).
func Seed(g *grid.CostGrid, wires []*wire.Wire) error {
	for _, w := range wires {
		if wire.IsCollinear(w) {
			w.Path = wire.StraightPath{}
		} else {
			w.Path = wire.OneBendPath{Bend: wire.Cell{X: w.End.X, Y: w.Start.Y}}
		}

		cells, err := wire.Cells(w)
		if err != nil {
			return err
		}
		if err := g.Stamp(cells, +1); err != nil {
			return err
		}
	}

	return nil
}

// Congestion returns g's current contention grid as a plain [][]int shaped
// CellValues[y][x] — exactly the layout gridgraph.NewGridGraph consumes.
// See ContentionIslands for the connected-components use of this.
//
// Complexity: O(dim_x*dim_y).
func Congestion(g *grid.CostGrid) [][]int {
	return g.Snapshot()
}
