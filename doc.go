// Package pathfind is a small toolkit of generic shortest-path searches over
// graphs whose nodes are any comparable Go value.
//
// 🚀 What is in the box?
//
//	• Breadth-first search: one target or every reachable node (unit weights)
//	• Dijkstra: one target, every reachable node, or plain distances
//	• A*: one target, guided by a caller-supplied heuristic
//	• Grids: ASCII parsing, tiling, components and path rendering
//
// ✨ How it fits together
//
//   - A graph is anything with Neighbors(n) []core.Edge[N]; nodes are never
//     enumerated up front, so graphs may be implicit or unbounded
//   - "No path" is a normal result: (nil, false)
//   - A broken graph contract panics with an error wrapping a core sentinel
//   - Every call owns its search state, so concurrent searches over a
//     read-only graph are safe
//
// Subpackages:
//
//	core/          Edge, Graph, Goal, Heuristic, route tables, Adjacency
//	bfs/           Path, All
//	dijkstra/      Path, All, Distances
//	astar/         Path, Zero
//	gridgraph/     Point geometry, GridGraph, Plane
//	cmd/pathfind/  command-line front end over grid files
//
// Quick ASCII example:
//
//	S19
//	1#1     dijkstra.Path from S to E costs 4,
//	11E     going down the left edge and along the bottom.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
