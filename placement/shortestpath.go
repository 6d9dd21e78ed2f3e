package placement

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/routecost"
	"github.com/katalvlaran/lvlath/wire"
)

const meshVertexFmt = "%d,%d" // "x,y"

func meshVertexID(c wire.Cell) string {
	return fmt.Sprintf(meshVertexFmt, c.X, c.Y)
}

func parseMeshVertexID(id string) (wire.Cell, error) {
	var x, y int
	if _, err := fmt.Sscanf(id, meshVertexFmt, &x, &y); err != nil {
		return wire.Cell{}, fmt.Errorf("placement: malformed mesh vertex id %q: %w", id, err)
	}

	return wire.Cell{X: x, Y: y}, nil
}

// meshEdgeWeight turns a cell's current contention into an edge weight that
// strongly penalizes routing through busy cells while still preferring
// fewer hops when contention is equal — a plain hop-count graph (all
// weights 0 or 1) would let Dijkstra return an arbitrary zero-cost detour
// whenever the grid is empty.
func meshEdgeWeight(contention int) int64 {
	return int64(contention)*1000 + 1
}

// ShortestPathSeed is an optional, non-default candidate source: instead of
// the fixed-corner default, it runs dijkstra.Dijkstra over a core.Graph
// built from g's 4-connectivity (each undirected edge weighted by the
// contention of its right or lower cell) and clips the resulting walk down to the nearest L/Z
// candidate from routecost.Enumerate — so the engine's candidate family
// (spec.md §4.4) is untouched, only the starting point changes.
//
// w must not yet be stamped into g (its own path, if any, is not
// considered an obstacle). Collinear wires short-circuit to StraightPath,
// since no mesh walk can beat the one legal path.
//
// Complexity: O((dim_x*dim_y) log(dim_x*dim_y)) for the Dijkstra run.
func ShortestPathSeed(g *grid.CostGrid, w *wire.Wire) (wire.Path, error) {
	if wire.IsCollinear(w) {
		return wire.StraightPath{}, nil
	}

	mesh := core.NewGraph(core.WithWeighted())
	for y := 0; y < g.DimY; y++ {
		for x := 0; x < g.DimX; x++ {
			if err := mesh.AddVertex(meshVertexID(wire.Cell{X: x, Y: y})); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < g.DimY; y++ {
		for x := 0; x < g.DimX; x++ {
			c := wire.Cell{X: x, Y: y}
			id := meshVertexID(c)

			if x+1 < g.DimX {
				nc := wire.Cell{X: x + 1, Y: y}
				v, err := g.Read(nc)
				if err != nil {
					return nil, err
				}
				if _, err := mesh.AddEdge(id, meshVertexID(nc), meshEdgeWeight(v)); err != nil {
					return nil, err
				}
			}
			if y+1 < g.DimY {
				nc := wire.Cell{X: x, Y: y + 1}
				v, err := g.Read(nc)
				if err != nil {
					return nil, err
				}
				if _, err := mesh.AddEdge(id, meshVertexID(nc), meshEdgeWeight(v)); err != nil {
					return nil, err
				}
			}
		}
	}

	_, prev, err := dijkstra.Dijkstra(mesh, dijkstra.Source(meshVertexID(w.Start)), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("placement: shortest-path seed: %w", err)
	}

	walk, err := reconstructWalk(prev, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	best := wire.Path(wire.OneBendPath{Bend: wire.Cell{X: w.End.X, Y: w.Start.Y}})
	bestScore := -1
	for _, cand := range routecost.Enumerate(w) {
		candCells, err := wire.CellsFor(w.Start, w.End, cand)
		if err != nil {
			continue
		}
		if score := overlap(candCells, walk); score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best, nil
}

// SeedShortestPath is the dijkstra-guided counterpart to Seed: it assigns
// each wire the L/Z candidate ShortestPathSeed picks (routing around
// whatever contention earlier wires in the list already stamped) instead
// of the fixed default corner, then stamps the result into g.
//
// Complexity: O(numWires * (dim_x*dim_y) log(dim_x*dim_y)).
func SeedShortestPath(g *grid.CostGrid, wires []*wire.Wire) error {
	for _, w := range wires {
		p, err := ShortestPathSeed(g, w)
		if err != nil {
			return err
		}
		w.Path = p

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

// reconstructWalk walks prev backward from end to start, returning the
// cell sequence in start-to-end order.
func reconstructWalk(prev map[string]string, start, end wire.Cell) ([]wire.Cell, error) {
	startID, endID := meshVertexID(start), meshVertexID(end)

	var ids []string
	visited := make(map[string]bool)
	for cur := endID; cur != startID; {
		if visited[cur] {
			return nil, wire.ErrNoPath
		}
		visited[cur] = true
		ids = append(ids, cur)

		next, ok := prev[cur]
		if !ok {
			return nil, wire.ErrNoPath
		}
		cur = next
	}
	ids = append(ids, startID)

	cells := make([]wire.Cell, len(ids))
	for i, id := range ids {
		c, err := parseMeshVertexID(id)
		if err != nil {
			return nil, err
		}
		cells[len(ids)-1-i] = c
	}

	return cells, nil
}

func overlap(a, b []wire.Cell) int {
	set := make(map[wire.Cell]struct{}, len(b))
	for _, c := range b {
		set[c] = struct{}{}
	}

	n := 0
	for _, c := range a {
		if _, ok := set[c]; ok {
			n++
		}
	}

	return n
}
