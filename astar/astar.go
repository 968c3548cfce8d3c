package astar

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/internal/frontier"
)

// estItem is a heap entry: the node, its cost so far, and the priority key
// cost+heuristic.
type estItem[N comparable] struct {
	node N
	cost int64
	est  int64
}

// searcher holds the mutable state of one A* run.
type searcher[N comparable] struct {
	g       core.Graph[N]
	h       core.Heuristic[N]
	opts    Options[N]
	cost    map[N]int64
	routes  core.EdgeRoutes[N]
	settled map[N]struct{}
	pq      *frontier.Heap[estItem[N]]
}

// Path returns an edge path from start to the first settled node satisfying
// goal, exploring in order of cost-so-far plus h. A nil h is treated as Zero.
//
// The path is cost-optimal when h is admissible (never overestimates the
// remaining cost). With an inadmissible h the search still terminates with a
// valid path, but not necessarily the cheapest one.
//
// If start satisfies goal the path is empty. It reports false when no
// reachable node satisfies goal. Contract violations panic exactly as in
// dijkstra.Path.
func Path[N comparable](g core.Graph[N], start N, goal core.Goal[N], h core.Heuristic[N], opts ...Option[N]) ([]core.Edge[N], bool) {
	if h == nil {
		h = Zero[N]()
	}
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &searcher[N]{
		g:       g,
		h:       h,
		opts:    cfg,
		cost:    map[N]int64{start: 0},
		routes:  make(core.EdgeRoutes[N]),
		settled: make(map[N]struct{}),
		pq: frontier.NewHeap(func(a, b estItem[N]) bool {
			return a.est < b.est
		}),
	}
	s.pq.Push(estItem[N]{node: start, cost: 0, est: h(start)})

	found, ok := s.run(goal)
	if !ok {
		return nil, false
	}
	path, ok := s.routes.PathTo(start, found)
	if !ok {
		panic(fmt.Errorf("%w: goal %v has no route", core.ErrBrokenRoute, found))
	}
	return path, true
}

func (s *searcher[N]) run(goal core.Goal[N]) (N, bool) {
	for {
		item, ok := s.pq.Pop()
		if !ok {
			var zero N
			return zero, false
		}
		u := item.node
		// Stale entry: u was improved after this push, or is already closed.
		if item.cost != s.cost[u] {
			continue
		}
		if _, done := s.settled[u]; done {
			continue
		}
		if goal != nil && goal(u) {
			return u, true
		}

		s.settled[u] = struct{}{}
		s.opts.OnSettle(u, item.cost, item.est)
		s.expand(u, item.cost)
	}
}

// expand relaxes every edge out of u. Only the priority key differs from
// Dijkstra: comparisons use the true cost. A settled node that gains a
// strictly cheaper cost is reopened; with a consistent heuristic this never
// happens.
func (s *searcher[N]) expand(u N, cu int64) {
	for _, e := range s.g.Neighbors(u) {
		core.CheckEdge(u, e)
		if e.Weight < 0 {
			panic(fmt.Errorf("%w: %v", core.ErrNegativeWeight, e))
		}
		v := e.Dest
		next := cu + e.Weight
		if old, seen := s.cost[v]; seen && next >= old {
			continue
		}
		delete(s.settled, v)
		s.cost[v] = next
		s.routes[v] = e
		s.pq.Push(estItem[N]{node: v, cost: next, est: next + s.h(v)})
	}
}
