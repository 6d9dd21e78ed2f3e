package placement

import (
	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// ContentionIslands groups g's cells into connected components keyed by
// contention level, using gridgraph's flood-fill ConnectedComponents over
// Congestion(g) rather than this package reimplementing grid traversal.
// Cells below threshold are excluded (treated as "water").
//
// A threshold of 1 groups every occupied cell; raising it isolates the
// cells actually contended by more than one wire, which is the set a
// caller deciding where to focus re-routing effort cares about.
//
// Complexity: O(dim_x*dim_y).
func ContentionIslands(g *grid.CostGrid, threshold int) (map[int][][]gridgraph.Cell, error) {
	gg, err := gridgraph.NewGridGraph(Congestion(g), gridgraph.GridOptions{
		LandThreshold: threshold,
		Conn:          gridgraph.Conn4,
	})
	if err != nil {
		return nil, err
	}

	return gg.ConnectedComponents(), nil
}
