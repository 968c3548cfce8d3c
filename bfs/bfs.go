// Package bfs provides breadth-first search over a core.Graph whose edges
// all weigh exactly 1, returning fewest-edge paths as node sequences.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/internal/frontier"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker[N comparable] struct {
	graph  core.Graph[N]
	opts   Options[N]
	start  N
	queue  *frontier.Queue[queueItem[N]]
	seen   map[N]struct{}
	routes core.NodeRoutes[N]
}

func newWalker[N comparable](g core.Graph[N], start N, opts []Option[N]) *walker[N] {
	w := &walker[N]{
		graph:  g,
		opts:   buildOptions(opts),
		start:  start,
		queue:  frontier.NewQueue(queueItem[N]{node: start}),
		seen:   map[N]struct{}{start: {}},
		routes: make(core.NodeRoutes[N]),
	}
	return w
}

// Path runs breadth-first search from start and returns the node sequence
// start..goal (inclusive) to the first dequeued node satisfying goal.
// The goal is tested on dequeue, so the returned path has the fewest edges.
// It reports false when no reachable node satisfies goal.
//
// Panics (wrapping core.ErrNonUnitWeight or core.ErrSourceMismatch) if the
// graph hands out an edge with weight != 1 or with the wrong source.
//
// Complexity: O(V + E) over the explored region.
func Path[N comparable](g core.Graph[N], start N, goal core.Goal[N], opts ...Option[N]) ([]N, bool) {
	w := newWalker(g, start, opts)
	found, ok := w.run(goal)
	if !ok {
		return nil, false
	}
	path, ok := w.routes.PathTo(start, found)
	if !ok {
		panic(fmt.Errorf("%w: goal %v has no route", core.ErrBrokenRoute, found))
	}
	return path, true
}

// All explores everything reachable from start and returns, for every
// discovered node, a fewest-edge node path from start. The start node maps
// to [start]. Nodes without a recorded route are left out.
//
// Complexity: O(V + E) traversal plus O(V·D) path materialization, where D
// is the depth of the search tree.
func All[N comparable](g core.Graph[N], start N, opts ...Option[N]) map[N][]N {
	w := newWalker(g, start, opts)
	w.run(nil)

	paths := make(map[N][]N, len(w.seen))
	for n := range w.seen {
		if path, ok := w.routes.PathTo(start, n); ok {
			paths[n] = path
		}
	}
	return paths
}

// run drains the queue, stopping early at the first node accepted by goal.
// A nil goal never matches.
func (w *walker[N]) run(goal core.Goal[N]) (N, bool) {
	for {
		item, ok := w.queue.Pop()
		if !ok {
			var zero N
			return zero, false
		}
		w.opts.OnVisit(item.node, item.depth)
		if goal != nil && goal(item.node) {
			return item.node, true
		}
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors validates every outgoing edge, applies MaxDepth, and
// enqueues each unseen destination.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	for _, e := range w.graph.Neighbors(item.node) {
		core.CheckEdge(item.node, e)
		if e.Weight != 1 {
			panic(fmt.Errorf("%w: %v", core.ErrNonUnitWeight, e))
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if _, ok := w.seen[e.Dest]; ok {
			continue
		}
		w.seen[e.Dest] = struct{}{}
		w.routes[e.Dest] = item.node
		w.queue.Push(queueItem[N]{node: e.Dest, depth: nextDepth})
	}
}
