package routecost

import "github.com/katalvlaran/lvlath/wire"

// Enumerate produces the candidate family for w (spec.md §4.4).
//
// If w is collinear, the only legal path is the straight line, so Enumerate
// returns a single-element slice holding it.
//
// Otherwise it returns exactly |Δx|+|Δy| candidates, built from two
// families that each sweep the bend coordinate over the fixed inclusive
// range [min+1, max] — never the start- or end-exclusive range a naive
// direction-dependent loop would use (spec.md §9, "Candidate parity bug"):
//
//   - horizontal-first: for each x in [min(sx,ex)+1, max(sx,ex)], the path
//     start → (x, sy) → (x, ey) → end, with the (x, ey) bend absent when
//     x == ex (a one-bend candidate).
//   - vertical-first: for each y in [min(sy,ey)+1, max(sy,ey)], the path
//     start → (sx, y) → (ex, y) → end, with the (ex, y) bend absent when
//     y == ey.
//
// The wire's currently committed path is not among the returned candidates:
// the re-routing engine folds it in separately as the incumbent before
// comparing (spec.md §4.5).
//
// Complexity: O(|Δx|+|Δy|) candidates, O(1) to construct each.
func Enumerate(w *wire.Wire) []wire.Path {
	sx, sy := w.Start.X, w.Start.Y
	ex, ey := w.End.X, w.End.Y

	if sx == ex || sy == ey {
		return []wire.Path{wire.StraightPath{}}
	}

	loX, hiX := sx, ex
	if loX > hiX {
		loX, hiX = hiX, loX
	}
	loY, hiY := sy, ey
	if loY > hiY {
		loY, hiY = hiY, loY
	}

	candidates := make([]wire.Path, 0, (hiX-loX)+(hiY-loY))

	for x := loX + 1; x <= hiX; x++ {
		if x == ex {
			candidates = append(candidates, wire.OneBendPath{Bend: wire.Cell{X: x, Y: sy}})
		} else {
			candidates = append(candidates, wire.TwoBendPath{
				Bend1: wire.Cell{X: x, Y: sy},
				Bend2: wire.Cell{X: x, Y: ey},
			})
		}
	}

	for y := loY + 1; y <= hiY; y++ {
		if y == ey {
			candidates = append(candidates, wire.OneBendPath{Bend: wire.Cell{X: sx, Y: y}})
		} else {
			candidates = append(candidates, wire.TwoBendPath{
				Bend1: wire.Cell{X: sx, Y: y},
				Bend2: wire.Cell{X: ex, Y: y},
			})
		}
	}

	return candidates
}
