package placement

import (
	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// RandomPlacement seeds every wire with one of its two canonical one-bend
// corners, (end.X, start.Y) or (start.X, end.Y), chosen by an independent
// per-wire RNG stream derived from seed (or the straight path when
// collinear), then stamps the result into g.
//
// This is an additive alternative to Seed's fixed default, exercising the
// same deriveSeed discipline tsp/rng.go uses for per-worker streams,
// applied here per-wire instead of per-worker.
//
// Complexity: O(sum of route lengths).
func RandomPlacement(g *grid.CostGrid, wires []*wire.Wire, seed int64) error {
	for i, w := range wires {
		switch {
		case wire.IsCollinear(w):
			w.Path = wire.StraightPath{}
		case rngForWire(seed, i).Intn(2) == 0:
			w.Path = wire.OneBendPath{Bend: wire.Cell{X: w.End.X, Y: w.Start.Y}}
		default:
			w.Path = wire.OneBendPath{Bend: wire.Cell{X: w.Start.X, Y: w.End.Y}}
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
