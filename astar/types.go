package astar

import "github.com/katalvlaran/pathfind/core"

// Options configures an A* search.
type Options[N comparable] struct {
	// OnSettle is called when a node is settled, with its true cost g and
	// its estimated total cost g+h. A node reopened under an inconsistent
	// heuristic is reported again at its cheaper cost.
	OnSettle func(n N, cost, estimate int64)
}

// Option represents a functional option for configuring A*.
type Option[N comparable] func(*Options[N])

// WithOnSettle registers a callback run when a node is settled.
func WithOnSettle[N comparable](fn func(n N, cost, estimate int64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{OnSettle: func(N, int64, int64) {}}
}

// Zero is the constant-zero heuristic. With it A* explores exactly like
// Dijkstra.
func Zero[N comparable]() core.Heuristic[N] {
	return func(N) int64 { return 0 }
}
