package core

import "fmt"

// NodeRoutes maps each discovered node to the node it was first reached from.
// The start node has no entry.
type NodeRoutes[N comparable] map[N]N

// PathTo walks predecessors back from goal to start and returns the node
// sequence start..goal, inclusive of both. It reports false if goal was never
// routed. A chain that does not reach start within len(r)+1 hops panics with
// ErrBrokenRoute.
func (r NodeRoutes[N]) PathTo(start, goal N) ([]N, bool) {
	if goal == start {
		return []N{start}, true
	}
	if _, ok := r[goal]; !ok {
		return nil, false
	}

	path := []N{goal}
	for cur := goal; cur != start; {
		prev, ok := r[cur]
		if !ok {
			// routed, but the chain stops short of start
			return nil, false
		}
		cur = prev
		path = append(path, cur)
		if len(path) > len(r)+1 {
			panic(fmt.Errorf("%w: %v does not lead back to %v", ErrBrokenRoute, goal, start))
		}
	}
	reverse(path)

	return path, true
}

// EdgeRoutes maps each reached node to the edge that achieved its best cost.
// The start node has no entry.
type EdgeRoutes[N comparable] map[N]Edge[N]

// PathTo walks predecessor edges back from goal to start and returns the edge
// sequence in travel order. A path from start to itself is empty but found.
// It reports false if goal was never reached.
func (r EdgeRoutes[N]) PathTo(start, goal N) ([]Edge[N], bool) {
	if goal == start {
		return []Edge[N]{}, true
	}
	if _, ok := r[goal]; !ok {
		return nil, false
	}

	var path []Edge[N]
	for cur := goal; cur != start; {
		e, ok := r[cur]
		if !ok {
			return nil, false
		}
		path = append(path, e)
		cur = e.Source
		if len(path) > len(r) {
			panic(fmt.Errorf("%w: %v does not lead back to %v", ErrBrokenRoute, goal, start))
		}
	}
	reverse(path)

	return path, true
}

// Cost sums the weights of a path.
func Cost[N comparable](path []Edge[N]) int64 {
	var total int64
	for _, e := range path {
		total += e.Weight
	}
	return total
}

// Nodes expands an edge path into the node sequence it visits, starting at start.
func Nodes[N comparable](start N, path []Edge[N]) []N {
	out := make([]N, 0, len(path)+1)
	out = append(out, start)
	for _, e := range path {
		out = append(out, e.Dest)
	}
	return out
}

// Validate checks that path leaves start, arrives at a node accepted by goal,
// and that every edge begins where the previous one ended.
// An empty path is valid only when start itself satisfies goal.
func Validate[N comparable](start N, goal Goal[N], path []Edge[N]) error {
	cur := start
	for i, e := range path {
		if e.Source != cur {
			if i == 0 {
				return fmt.Errorf("%w: path starts at %v, want %v", ErrWrongEndpoint, e.Source, start)
			}
			return fmt.Errorf("%w: edge %d starts at %v after arriving at %v", ErrDiscontiguous, i, e.Source, cur)
		}
		cur = e.Dest
	}
	if goal != nil && !goal(cur) {
		return fmt.Errorf("%w: path ends at %v which is not a goal", ErrWrongEndpoint, cur)
	}
	return nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
