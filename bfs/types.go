// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is the panic value raised when an invalid Option is built.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize a search.
type Options[N comparable] struct {
	// OnVisit is called when a node is dequeued, before the goal test.
	// Receives the node and its depth (edges) from the start.
	OnVisit func(n N, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int
}

// DefaultOptions returns Options with a no-op hook and no depth limit.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit:  func(N, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run on every dequeued node.
func WithOnVisit[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: nodes deeper than d are never enqueued
//	d == 0: no depth limit
//	d < 0: panics with ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	if d < 0 {
		panic(fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d))
	}
	return func(o *Options[N]) {
		o.MaxDepth = d
	}
}

func buildOptions[N comparable](opts []Option[N]) Options[N] {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
