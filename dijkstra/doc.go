// Package dijkstra computes minimum-cost paths over a core.Graph whose edge
// weights are non-negative.
//
// Dijkstra settles nodes in order of increasing cost from the start using a
// min-heap. Once a node is popped and settled its cost is final and never
// revisited; later, stale heap entries for it are skipped.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = settled nodes, E = edges examined
//	   • Each node is settled at most once.
//	   • Each strict improvement pushes one heap entry (lazy decrease-key).
//	– Space: O(V + E)
//	   • O(V) for cost, settled and predecessor maps.
//	   • O(E) in the heap in the worst case.
//
// Entry points:
//
//	– Path(g, start, goal, opts...)  edge path to the first settled goal node.
//	– All(g, start, opts...)         edge path to every reachable node.
//	– Distances(g, start, opts...)   final cost of every reachable node.
//
// Options:
//
//	– WithMaxDistance(x):      nodes costing more than x are not settled (x ≥ 0).
//	– WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//	– WithOnSettle(fn):        observe each settled node and its cost.
//
// Contract violations (panics):
//
//	– core.ErrNegativeWeight  a relaxed edge has negative weight.
//	– core.ErrSourceMismatch  an edge does not leave the node it was listed for.
//
// Example usage:
//
//	path, ok := dijkstra.Path[string](g, "A", core.Is("D"))
//	if !ok {
//	    log.Fatal("no route")
//	}
//	fmt.Println(core.Cost(path))
package dijkstra
