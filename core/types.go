package core

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrSourceMismatch indicates Neighbors(n) returned an edge that does not start at n.
	ErrSourceMismatch = errors.New("core: edge source does not match queried node")

	// ErrNonUnitWeight indicates a breadth-first search met an edge with weight != 1.
	ErrNonUnitWeight = errors.New("core: breadth-first search requires unit edge weights")

	// ErrNegativeWeight indicates a weighted search met an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBrokenRoute indicates a predecessor chain that never reaches the start node.
	ErrBrokenRoute = errors.New("core: broken predecessor chain")

	// ErrDiscontiguous is returned by Validate when consecutive edges do not join.
	ErrDiscontiguous = errors.New("core: path is not contiguous")

	// ErrWrongEndpoint is returned by Validate when a path starts or ends at the wrong node.
	ErrWrongEndpoint = errors.New("core: path endpoint mismatch")
)

// Edge is a directed, weighted connection from Source to Dest.
// Edges are plain values: every Neighbors call hands out fresh copies.
type Edge[N comparable] struct {
	Weight int64
	Source N
	Dest   N
}

// NewEdge builds an Edge.
func NewEdge[N comparable](weight int64, source, dest N) Edge[N] {
	return Edge[N]{Weight: weight, Source: source, Dest: dest}
}

// String renders the edge as "source -(w)-> dest".
func (e Edge[N]) String() string {
	return fmt.Sprintf("%v -(%d)-> %v", e.Source, e.Weight, e.Dest)
}

// Graph is the single capability every search depends on.
type Graph[N comparable] interface {
	// Neighbors returns the outgoing edges of n. The result may be empty.
	Neighbors(n N) []Edge[N]
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[N comparable] func(n N) []Edge[N]

// Neighbors calls f(n).
func (f GraphFunc[N]) Neighbors(n N) []Edge[N] { return f(n) }

// Goal reports whether a node terminates a single-target search.
type Goal[N comparable] func(n N) bool

// Is returns a Goal matching exactly target.
func Is[N comparable](target N) Goal[N] {
	return func(n N) bool { return n == target }
}

// Heuristic estimates the remaining cost from a node to the nearest goal.
type Heuristic[N comparable] func(n N) int64

// CheckEdge panics with ErrSourceMismatch if e does not leave from.
func CheckEdge[N comparable](from N, e Edge[N]) {
	if e.Source != from {
		panic(fmt.Errorf("%w: queried %v, got %v", ErrSourceMismatch, from, e))
	}
}
