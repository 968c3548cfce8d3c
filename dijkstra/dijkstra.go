// Package dijkstra implements Dijkstra's shortest-path search on weighted
// graphs with non-negative edge weights.
//
// Nodes are settled in order of increasing cost from the start using a
// min-heap. Each settled node's cost is final; its predecessor edge is kept
// so the route can be rebuilt as a list of edges.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop settling once the minimum cost in the heap exceeds MaxDistance.
//   - Negative weights cannot be pre-scanned on an implicit graph, so each
//     edge is checked as it is relaxed.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/internal/frontier"
)

// Path returns a minimum-cost edge path from start to the first settled node
// satisfying goal. The goal is tested when a node is popped, so the cost is
// minimal; among equal-cost paths any one may be returned. If start itself
// satisfies goal the path is empty. It reports false if no reachable node
// satisfies goal.
//
// Panics with an error wrapping core.ErrNegativeWeight or
// core.ErrSourceMismatch if the graph violates its contract.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Path[N comparable](g core.Graph[N], start N, goal core.Goal[N], opts ...Option[N]) ([]core.Edge[N], bool) {
	r := newRunner(g, start, opts)
	found, ok := r.process(goal)
	if !ok {
		return nil, false
	}
	path, ok := r.routes.PathTo(start, found)
	if !ok {
		panic(fmt.Errorf("%w: goal %v has no route", core.ErrBrokenRoute, found))
	}
	return path, true
}

// All settles every node reachable from start and returns a minimum-cost
// edge path to each. The start node maps to an empty path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) search plus O(V·D) path materialization.
//   - Space: O(V + E)
func All[N comparable](g core.Graph[N], start N, opts ...Option[N]) map[N][]core.Edge[N] {
	r := newRunner(g, start, opts)
	r.process(nil)

	paths := make(map[N][]core.Edge[N], len(r.settled))
	for n := range r.settled {
		if path, ok := r.routes.PathTo(start, n); ok {
			paths[n] = path
		}
	}
	return paths
}

// Distances settles every node reachable from start and returns its final
// cost, without materializing paths.
func Distances[N comparable](g core.Graph[N], start N, opts ...Option[N]) map[N]int64 {
	r := newRunner(g, start, opts)
	r.process(nil)

	out := make(map[N]int64, len(r.settled))
	for n := range r.settled {
		out[n] = r.dist[n]
	}
	return out
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	g       core.Graph[N]               // The input graph; read-only within Dijkstra.
	options Options[N]                  // Configuration options (thresholds, hooks).
	dist    map[N]int64                 // Maps node → current best cost from start.
	routes  core.EdgeRoutes[N]          // Maps node → edge that achieved its best cost.
	settled map[N]struct{}              // Nodes whose cost is final.
	pq      *frontier.Heap[nodeItem[N]] // Min-heap ordered by cost.
}

// nodeItem represents a node and its tentative cost at push time.
type nodeItem[N comparable] struct {
	node N
	dist int64
}

func newRunner[N comparable](g core.Graph[N], start N, opts []Option[N]) *runner[N] {
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    map[N]int64{start: 0},
		routes:  make(core.EdgeRoutes[N]),
		settled: make(map[N]struct{}),
		pq: frontier.NewHeap(func(a, b nodeItem[N]) bool {
			return a.dist < b.dist
		}),
	}
	r.pq.Push(nodeItem[N]{node: start, dist: 0})

	return r
}

// process is the core loop. It repeatedly pops the cheapest node, tests the
// goal, settles the node and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - A popped node satisfies goal (returned with true).
//   - The heap becomes empty (all reachable nodes settled).
//   - The minimum cost in the heap exceeds MaxDistance.
func (r *runner[N]) process(goal core.Goal[N]) (N, bool) {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			break
		}
		u := item.node

		// Skip stale heap entries left behind by later improvements.
		if _, done := r.settled[u]; done {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if goal != nil && goal(u) {
			return u, true
		}

		r.settled[u] = struct{}{}
		if item.dist != r.dist[u] {
			panic(fmt.Errorf("%w: %v popped at %d but best known is %d", core.ErrBrokenRoute, u, item.dist, r.dist[u]))
		}
		r.options.OnSettle(u, item.dist)
		r.relax(u)
	}

	var zero N
	return zero, false
}

// relax examines each edge leaving u and records any strictly cheaper route.
// Assumes r.dist[u] is final.
func (r *runner[N]) relax(u N) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		core.CheckEdge(u, e)
		if e.Weight < 0 {
			panic(fmt.Errorf("%w: %v", core.ErrNegativeWeight, e))
		}

		// Skip any edge marked impassable by InfEdgeThreshold.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Dest
		if _, done := r.settled[v]; done {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal costs keep the first route found.
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.routes[v] = e
		r.pq.Push(nodeItem[N]{node: v, dist: newDist})
	}
}
