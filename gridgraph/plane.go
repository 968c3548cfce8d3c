package gridgraph

import "github.com/katalvlaran/pathfind/core"

// Plane is an unbounded 4-connected plane of unit-cost steps with a set of
// blocked points. A blocked point has no edges and cannot be entered.
type Plane struct {
	blocked map[Point]struct{}
}

// NewPlane returns a Plane with the given points blocked.
func NewPlane(blocked ...Point) *Plane {
	b := make(map[Point]struct{}, len(blocked))
	for _, p := range blocked {
		b[p] = struct{}{}
	}
	return &Plane{blocked: b}
}

// Blocked reports whether p cannot be entered.
func (pl *Plane) Blocked(p Point) bool {
	_, ok := pl.blocked[p]
	return ok
}

// Neighbors implements core.Graph.
func (pl *Plane) Neighbors(p Point) []core.Edge[Point] {
	if pl.Blocked(p) {
		return nil
	}
	out := make([]core.Edge[Point], 0, len(Cardinal))
	for _, d := range Cardinal {
		q := p.Add(d)
		if pl.Blocked(q) {
			continue
		}
		out = append(out, core.NewEdge(1, p, q))
	}
	return out
}
