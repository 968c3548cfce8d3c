// Package core defines the graph abstraction shared by every search in
// pathfind: the Edge value type, the Graph capability, goal and heuristic
// function types, and the route tables used to rebuild paths.
//
// A Graph is not a stored structure but a capability: anything that can
// answer "what are node n's outgoing edges". Graphs may be implicit and
// unbounded (puzzle states as nodes, legal moves as edges), so no search in
// this module ever enumerates all nodes up front.
//
// Node contract
//
//	N must be comparable. Go equality gives value identity, map keys give
//	hashing, and ordinary assignment gives the cheap duplication the
//	searches rely on when copying nodes into queues and route tables.
//	Nodes are never mutated by the engine.
//
// Neighbor contract
//
//	Neighbors(n) must return edges whose Source equals n, and must be a pure
//	function of n and immutable graph-wide data. The same node may be queried
//	many times and must yield the same edges each time.
//
// Contract violations
//
//	A malformed graph model is a programming error, not bad input data. The
//	searches fail fast by panicking with an error wrapping one of:
//
//	– ErrSourceMismatch  an edge's Source differs from the queried node.
//	– ErrNonUnitWeight   a BFS saw an edge whose weight is not 1.
//	– ErrNegativeWeight  Dijkstra or A* saw a negative edge weight.
//	– ErrBrokenRoute     a predecessor chain does not lead back to start.
//
// "No path" is never a violation; it is reported as (nil, false).
//
// Adjacency
//
//	For finite graphs that are easier to list than to generate, Adjacency
//	stores edges explicitly and satisfies Graph. It is safe to read from
//	many searches at once.
package core
