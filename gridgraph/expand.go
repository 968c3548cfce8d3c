package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// virtual node feeding every cell of the source component at cost 0.
var superSource = Point{-1, -1}

// ExpandIsland finds the cheapest way to join component src to component dst,
// as numbered by Components, by converting walls into land. Stepping onto a
// passable cell costs 0 and onto a wall costs 1, so the returned cost is the
// number of walls converted. The path runs from a cell of src to a cell of
// dst, both included.
//
// Returns ErrComponentIndex for an unknown component and ErrNoPath if dst
// cannot be reached.
//
// Complexity: O(W·H·log(W·H)).
func (gg *GridGraph) ExpandIsland(src, dst int) ([]Point, int64, error) {
	comps := gg.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d, have %d", ErrComponentIndex, src, dst, len(comps))
	}

	target := make(map[Point]struct{}, len(comps[dst]))
	for _, p := range comps[dst] {
		target[p] = struct{}{}
	}
	seeds := comps[src]
	conv := core.GraphFunc[Point](func(p Point) []core.Edge[Point] {
		if p == superSource {
			out := make([]core.Edge[Point], len(seeds))
			for i, q := range seeds {
				out[i] = core.NewEdge(0, p, q)
			}
			return out
		}
		out := make([]core.Edge[Point], 0, len(gg.offsets))
		for _, d := range gg.offsets {
			q := p.Add(d)
			if !gg.InBounds(q) {
				continue
			}
			var w int64 = 1
			if gg.Passable(q) {
				w = 0
			}
			out = append(out, core.NewEdge(w, p, q))
		}
		return out
	})

	edges, ok := dijkstra.Path[Point](conv, superSource, func(p Point) bool {
		_, hit := target[p]
		return hit
	})
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
	}

	return core.Nodes(superSource, edges)[1:], core.Cost(edges), nil
}
