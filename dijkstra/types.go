// Package dijkstra defines configuration options for Dijkstra's
// shortest-path search over a core.Graph with non-negative weights.
//
// Options:
//
//	– MaxDistance:      optional cap on explored cost; nodes beyond it are never settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnSettle:         hook fired once per settled node with its final cost.
//
// Errors (panic values of the option constructors):
//
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors raised by invalid options.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of a Dijkstra search.
//
// MaxDistance      – nodes whose best cost exceeds this are never settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options[N comparable] struct {
	MaxDistance      int64          // Maximum cost to explore
	InfEdgeThreshold int64          // Weight threshold above which edges are non-traversable
	OnSettle         func(N, int64) // Called once per settled node with its final cost
}

// Option represents a functional option for configuring Dijkstra.
type Option[N comparable] func(*Options[N])

// WithMaxDistance sets a maximum cost threshold.
// Nodes whose shortest cost would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance[N comparable](max int64) Option[N] {
	if max < 0 {
		// Panic to signal invalid configuration early.
		panic(fmt.Errorf("%w: got %d", ErrBadMaxDistance, max))
	}
	return func(o *Options[N]) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold[N comparable](threshold int64) Option[N] {
	if threshold <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold))
	}
	return func(o *Options[N]) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a callback run when a node's cost becomes final.
func WithOnSettle[N comparable](fn func(n N, cost int64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - OnSettle:         no-op.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		OnSettle:         func(N, int64) {},
	}
}
