// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-edge paths from a start node.
//
// What
//
//   - Path: explore in strict FIFO order until a node satisfying the goal is
//     dequeued, then rebuild the node path start..goal.
//   - All: explore the whole reachable region and return a node path from
//     start to every discovered node.
//   - Supports an OnVisit hook fired per dequeued node, and a MaxDepth limit.
//
// Why
//
//   - Unit-weight shortest paths in O(V + E) time, no priority queue needed.
//   - Works on implicit graphs: nodes are discovered through Neighbors only.
//
// Contract
//
//	Every edge must weigh exactly 1 and leave from the queried node. A
//	violation means the caller's graph model is broken and the search panics
//	with an error wrapping core.ErrNonUnitWeight or core.ErrSourceMismatch.
//	An unreachable goal is not a violation: Path reports false.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them, so for a
//	deterministic graph the returned path is reproducible.
//
// Complexity (V = reached nodes, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, seen set, predecessor map)
//
// Usage
//
//	path, ok := bfs.Path(g, start, core.Is(goal))
//	if !ok {
//	    // unreachable
//	}
//
//	every := bfs.All(g, start, bfs.WithMaxDepth[Point](10))
package bfs
