package wire

// IsCollinear reports whether w's endpoints share a row or column, i.e.
// whether routing w requires no bend at all.
//
// Complexity: O(1).
func IsCollinear(w *Wire) bool {
	return w.Start.X == w.End.X || w.Start.Y == w.End.Y
}

// Cells returns the ordered cell list along w.Path, from Start to End, each
// cell appearing exactly once. At bend joins, the shared cell is emitted by
// exactly one of the two adjoining segments (the incoming one), never both,
// per the boundary rule in spec.md §4.1.
//
// Every grid operation (stamp, unstamp, cost-sum) is expressible as a fold
// over Cells: a single generic segment walker (walk, below) replaces the
// eight direction-specific loops a naive line-by-line port would need.
//
// Complexity: O(L) where L is the Manhattan length of the path.
func Cells(w *Wire) ([]Cell, error) {
	return CellsFor(w.Start, w.End, w.Path)
}

// CellsFor is the Path-agnostic core of Cells: it enumerates the cell list
// for an arbitrary (start, end, path) triple without requiring a *Wire. The
// Candidate Enumerator and Path Cost Evaluator use this directly to score
// candidates before any of them is committed as w.Path.
//
// Complexity: O(L) where L is the Manhattan length of the path.
func CellsFor(start, end Cell, path Path) ([]Cell, error) {
	if path == nil {
		return nil, ErrNoPath
	}

	switch p := path.(type) {
	case StraightPath:
		return walk(start, end, false), nil
	case OneBendPath:
		cells := walk(start, p.Bend, false)
		cells = append(cells, walk(p.Bend, end, true)...)
		return cells, nil
	case TwoBendPath:
		cells := walk(start, p.Bend1, false)
		cells = append(cells, walk(p.Bend1, p.Bend2, true)...)
		cells = append(cells, walk(p.Bend2, end, true)...)
		return cells, nil
	default:
		return nil, ErrNoPath
	}
}

// walk enumerates the cells of one axis-aligned segment from start to end,
// inclusive of end. If skipStart is true, start itself is omitted because
// it was already emitted as the end of the preceding segment — this is the
// single mechanism implementing the boundary tie-break rule for every bend
// in every path shape.
//
// Complexity: O(|end-start|).
func walk(start, end Cell, skipStart bool) []Cell {
	var dx, dy int
	switch {
	case start.X == end.X:
		dy = sign(end.Y - start.Y)
	case start.Y == end.Y:
		dx = sign(end.X - start.X)
	default:
		// Not axis-aligned: caller passed an invalid candidate. The engine
		// treats inputs as well-formed by precondition (spec.md §7), so we
		// fall back to a direct single-cell hop rather than panicking.
		cells := make([]Cell, 0, 2)
		if !skipStart {
			cells = append(cells, start)
		}
		return append(cells, end)
	}

	n := abs(end.X-start.X) + abs(end.Y-start.Y)
	cells := make([]Cell, 0, n+1)
	cur := start
	if !skipStart {
		cells = append(cells, cur)
	}
	for cur != end {
		cur.X += dx
		cur.Y += dy
		cells = append(cells, cur)
	}
	return cells
}

// InBounds reports whether c lies within a grid of the given dimensions.
//
// Complexity: O(1).
func InBounds(c Cell, dimX, dimY int) bool {
	return c.X >= 0 && c.X < dimX && c.Y >= 0 && c.Y < dimY
}

// Validate checks the well-formedness invariants from spec.md §8 property 3:
// at most two bends (guaranteed by the Path type itself), the polyline joins
// Start to End, every cell is in-grid, and Cells(w) contains no duplicates.
// Not called on the engine's hot path — intended for tests and diagnostics.
func Validate(w *Wire, dimX, dimY int) error {
	cells, err := Cells(w)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		return ErrNoPath
	}
	if cells[0] != w.Start || cells[len(cells)-1] != w.End {
		return ErrBadBend
	}
	seen := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		if !InBounds(c, dimX, dimY) {
			return ErrOutOfBounds
		}
		if _, dup := seen[c]; dup {
			return ErrBadBend
		}
		seen[c] = struct{}{}
	}
	return nil
}
