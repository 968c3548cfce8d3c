package gridgraph

import (
	"sort"

	"github.com/katalvlaran/pathfind/bfs"
)

// Components finds all contiguous regions of passable cells under gg.Conn.
// Components are ordered by their first cell in row-major order, and each
// component lists its cells in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) Components() [][]Point {
	visited := make([]bool, gg.Width*gg.Height)
	unit := gg.Unit()
	var comps [][]Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if visited[gg.index(p)] || !gg.Passable(p) {
				continue
			}
			reached := bfs.All[Point](unit, p)
			comp := make([]Point, 0, len(reached))
			for q := range reached {
				visited[gg.index(q)] = true
				comp = append(comp, q)
			}
			sortRowMajor(comp)
			comps = append(comps, comp)
		}
	}

	return comps
}

func sortRowMajor(ps []Point) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
