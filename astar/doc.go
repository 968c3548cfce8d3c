// Package astar implements A* search over a core.Graph with non-negative
// edge weights and a caller-supplied heuristic.
//
// A* generalizes Dijkstra: the frontier is ordered by g(n)+h(n), where g is
// the true cost from the start and h estimates the cost still to go. The
// true cost g is tracked separately from the priority key and is what every
// relaxation compares and what the returned path sums to.
//
// Heuristics
//
//   - Admissible (never overestimates): the returned path is cost-optimal.
//   - Zero (astar.Zero, or nil): explores exactly like dijkstra.Path.
//   - Inadmissible: the search still returns a valid path when one exists,
//     but it may be more expensive than the optimum. This is the caller's
//     trade, often worth it on huge state spaces; it is not guarded against.
//
// Stop condition and path reconstruction are identical to dijkstra.Path: the
// goal is tested when a node is popped, and predecessor edges are walked back
// to the start.
//
// Complexity: O((V + E) log V) for a consistent heuristic; usually far fewer
// nodes are settled than with Dijkstra when h is informative.
//
// Usage
//
//	h := func(p Point) int64 { return int64(p.Manhattan(goal)) }
//	path, ok := astar.Path[Point](grid, start, core.Is(goal), h)
package astar
