package grid

import (
	"sync/atomic"

	"github.com/katalvlaran/lvlath/wire"
)

// CostGrid is a dense dim_x × dim_y array of non-negative contention counts.
// Every cell is backed by its own atomic.Int32 so Stamp/Read never block
// under concurrent access from the re-routing engine's worker pool.
type CostGrid struct {
	DimX, DimY int
	cells      []atomic.Int32
}

// New constructs a zero-initialized CostGrid of the given dimensions.
//
// Complexity: O(dim_x*dim_y).
func New(dimX, dimY int) (*CostGrid, error) {
	if dimX <= 0 || dimY <= 0 {
		return nil, ErrBadDimensions
	}

	return &CostGrid{
		DimX:  dimX,
		DimY:  dimY,
		cells: make([]atomic.Int32, dimX*dimY),
	}, nil
}

// index maps (x,y) to a row-major slice index: y*DimX + x, mirroring
// gridgraph.GridGraph's index formula so both packages agree on layout.
//
// Complexity: O(1).
func (g *CostGrid) index(c wire.Cell) int {
	return c.Y*g.DimX + c.X
}

// InBounds reports whether c lies inside the grid.
//
// Complexity: O(1).
func (g *CostGrid) InBounds(c wire.Cell) bool {
	return wire.InBounds(c, g.DimX, g.DimY)
}

// Read returns the current contention count at c.
//
// Complexity: O(1).
func (g *CostGrid) Read(c wire.Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, ErrOutOfBounds
	}

	return int(g.cells[g.index(c)].Load()), nil
}

// Stamp applies delta (+1 to install a path, -1 to remove one) to every
// cell in path. Cells are validated against the grid bounds before any
// mutation is applied, so a Stamp call either fully applies or touches
// nothing.
//
// Complexity: O(len(path)).
func (g *CostGrid) Stamp(path []wire.Cell, delta int32) error {
	for _, c := range path {
		if !g.InBounds(c) {
			return ErrOutOfBounds
		}
	}
	for _, c := range path {
		g.cells[g.index(c)].Add(delta)
	}

	return nil
}

// Sum returns the sum of grid values along path — the "current cost"
// term of the Path Cost Evaluator (spec.md §4.3).
//
// Complexity: O(len(path)).
func (g *CostGrid) Sum(path []wire.Cell) (int, error) {
	total := 0
	for _, c := range path {
		v, err := g.Read(c)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Snapshot returns the grid as a plain [][]int shaped CellValues[y][x], the
// exact layout gridgraph.NewGridGraph consumes — see SPEC_FULL.md's Domain
// Stack: gridgraph.NewGridGraph(grid.Snapshot(), opts) finds contention
// "islands" without this package reimplementing connected-components.
//
// Complexity: O(dim_x*dim_y).
func (g *CostGrid) Snapshot() [][]int {
	out := make([][]int, g.DimY)
	for y := 0; y < g.DimY; y++ {
		row := make([]int, g.DimX)
		for x := 0; x < g.DimX; x++ {
			row[x] = int(g.cells[g.index(wire.Cell{X: x, Y: y})].Load())
		}
		out[y] = row
	}

	return out
}

// Total sums every cell in the grid — used to verify grid conservation
// (spec.md §8 property 1) at sweep boundaries.
//
// Complexity: O(dim_x*dim_y).
func (g *CostGrid) Total() int {
	total := 0
	for i := range g.cells {
		total += int(g.cells[i].Load())
	}

	return total
}
