package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// ExamplePath_grid finds the fewest-step route across an open 3×3 grid,
// generated on demand from cell coordinates.
func ExamplePath_grid() {
	type cell struct{ x, y int }
	grid := core.GraphFunc[cell](func(c cell) []core.Edge[cell] {
		var out []core.Edge[cell]
		for _, d := range []cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := cell{c.x + d.x, c.y + d.y}
			if n.x < 0 || n.y < 0 || n.x > 2 || n.y > 2 {
				continue
			}
			out = append(out, core.NewEdge(1, c, n))
		}
		return out
	})

	path, ok := bfs.Path[cell](grid, cell{0, 0}, core.Is(cell{2, 2}))
	fmt.Println(ok, len(path)-1, path[0], path[len(path)-1])
	// Output:
	// true 4 {0 0} {2 2}
}

// ExampleAll lists hop counts from "A" in a small network.
func ExampleAll() {
	g := core.NewAdjacency[string]()
	g.AddUndirectedEdge("A", "B", 1)
	g.AddUndirectedEdge("B", "C", 1)
	g.AddUndirectedEdge("A", "D", 1)

	all := bfs.All[string](g, "A")
	for _, n := range []string{"A", "B", "C", "D"} {
		fmt.Printf("%s:%d ", n, len(all[n])-1)
	}
	fmt.Println()
	// Output:
	// A:0 B:1 C:2 D:1
}
