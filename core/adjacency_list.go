package core

import "sync"

// Adjacency is an explicitly built, finite graph. Edges are stored per source
// node in insertion order, so Neighbors is deterministic.
//
// Mutations take a write lock and Neighbors takes a read lock, so any number
// of searches may read an Adjacency concurrently. Mutating it while a search
// is running is outside the search contract.
type Adjacency[N comparable] struct {
	mu    sync.RWMutex
	order []N
	out   map[N][]Edge[N]
}

// NewAdjacency returns an empty Adjacency.
func NewAdjacency[N comparable]() *Adjacency[N] {
	return &Adjacency[N]{out: make(map[N][]Edge[N])}
}

// AddNode inserts n if absent. Nodes are also added implicitly by AddEdge.
//
// Complexity: O(1)
func (a *Adjacency[N]) AddNode(n N) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.addNodeLocked(n)
}

func (a *Adjacency[N]) addNodeLocked(n N) {
	if _, ok := a.out[n]; ok {
		return
	}
	a.out[n] = nil
	a.order = append(a.order, n)
}

// AddEdge inserts the directed edge from→to with the given weight.
// Parallel edges and self-loops are kept as given.
//
// Complexity: O(1) amortized
func (a *Adjacency[N]) AddEdge(from, to N, weight int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.addNodeLocked(from)
	a.addNodeLocked(to)
	a.out[from] = append(a.out[from], NewEdge(weight, from, to))
}

// AddUndirectedEdge inserts from→to and its mirror to→from.
//
// Complexity: O(1) amortized
func (a *Adjacency[N]) AddUndirectedEdge(u, v N, weight int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.addNodeLocked(u)
	a.addNodeLocked(v)
	a.out[u] = append(a.out[u], NewEdge(weight, u, v))
	if u != v {
		a.out[v] = append(a.out[v], NewEdge(weight, v, u))
	}
}

// HasNode reports whether n has been added.
func (a *Adjacency[N]) HasNode(n N) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.out[n]
	return ok
}

// Nodes returns every node in insertion order.
func (a *Adjacency[N]) Nodes() []N {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]N, len(a.order))
	copy(out, a.order)
	return out
}

// EdgeCount returns the number of stored directed edges.
func (a *Adjacency[N]) EdgeCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := 0
	for _, es := range a.out {
		total += len(es)
	}
	return total
}

// Neighbors returns a copy of n's outgoing edges. Unknown nodes have none.
func (a *Adjacency[N]) Neighbors(n N) []Edge[N] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	es := a.out[n]
	if len(es) == 0 {
		return nil
	}
	out := make([]Edge[N], len(es))
	copy(out, es)
	return out
}
