// Package dijkstra_test provides examples demonstrating how to use Dijkstra.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ExamplePath demonstrates computing a cheapest route on a small triangle.
func ExamplePath() {
	g := core.NewAdjacency[string]()
	g.AddUndirectedEdge("A", "B", 1)
	g.AddUndirectedEdge("B", "C", 2)
	g.AddUndirectedEdge("A", "C", 5)

	path, ok := dijkstra.Path[string](g, "A", core.Is("C"))
	if !ok {
		fmt.Println("no path")
		return
	}
	for _, e := range path {
		fmt.Println(e)
	}
	fmt.Println("cost:", core.Cost(path))
	// Output:
	// A -(1)-> B
	// B -(2)-> C
	// cost: 3
}

// ExampleDistances shows the final cost of every reachable node on a
// directed graph.
func ExampleDistances() {
	g := core.NewAdjacency[string]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	dist := dijkstra.Distances[string](g, "A")
	fmt.Printf("A=%d B=%d C=%d D=%d\n", dist["A"], dist["B"], dist["C"], dist["D"])
	// Output: A=0 B=2 C=1 D=5
}
