package placement

import (
	"math/rand"

	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// BuildTestSession constructs a ready-to-route scenario: a dimX×dimY
// CostGrid and up to numWires wires with endpoints drawn from every
// in-bounds (row, col) cell of a rows×cols mesh, already seeded via Seed.
//
// The cell list is generated directly rather than through a general graph
// builder: a reproducible set of in-bounds coordinates needs no vertices,
// edges, or adjacency bookkeeping, only a deterministic enumeration and a
// seeded shuffle.
//
// If 2*numWires exceeds the mesh's cell count, the wire count is capped
// to the largest even number of cells available.
//
// Complexity: O(rows*cols) to enumerate cells, O(numWires) to draw wires.
func BuildTestSession(rows, cols, numWires int, seed int64) (*grid.CostGrid, []*wire.Wire, error) {
	if rows <= 0 || cols <= 0 {
		return nil, nil, ErrBadDimensions
	}
	if numWires <= 0 {
		return nil, nil, ErrNoWires
	}

	cells := make([]wire.Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, wire.Cell{X: c, Y: r})
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	count := numWires
	if max := len(cells) / 2; count > max {
		count = max
	}

	costGrid, err := grid.New(cols, rows)
	if err != nil {
		return nil, nil, err
	}

	wires := make([]*wire.Wire, 0, count)
	for i := 0; i < count; i++ {
		wires = append(wires, wire.NewWire(cells[2*i], cells[2*i+1]))
	}

	if err := Seed(costGrid, wires); err != nil {
		return nil, nil, err
	}

	return costGrid, wires, nil
}
