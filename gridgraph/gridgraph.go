package gridgraph

import "github.com/katalvlaran/pathfind/core"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsetsFor(opts.Conn),
	}, nil
}

func offsetsFor(c Connectivity) []Vector {
	if c == Conn8 {
		return Ordinal
	}
	return Cardinal
}

// InBounds reports whether p lies within the grid.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// Value returns the cell value at p. p must be in bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// TopLeft returns (0,0).
func (gg *GridGraph) TopLeft() Point { return Origin }

// BottomRight returns (Width-1, Height-1).
func (gg *GridGraph) BottomRight() Point { return Point{gg.Width - 1, gg.Height - 1} }

// Marker returns the position of a marker glyph such as 'S' or 'E' seen by Parse.
func (gg *GridGraph) Marker(c byte) (Point, bool) {
	p, ok := gg.markers[c]
	return p, ok
}

// Neighbors returns edges from p to every passable neighbor. Each edge is
// weighted by the value of the cell it enters. Walls and out-of-bounds
// points have no edges.
//
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(p Point) []core.Edge[Point] {
	if !gg.Passable(p) {
		return nil
	}
	out := make([]core.Edge[Point], 0, len(gg.offsets))
	for _, d := range gg.offsets {
		q := p.Add(d)
		if !gg.Passable(q) {
			continue
		}
		out = append(out, core.NewEdge(int64(gg.Value(q)), p, q))
	}
	return out
}

// Unit returns a view of gg in which every edge weighs 1, suitable for bfs.
func (gg *GridGraph) Unit() core.Graph[Point] {
	return core.GraphFunc[Point](func(p Point) []core.Edge[Point] {
		es := gg.Neighbors(p)
		for i := range es {
			es[i].Weight = 1
		}
		return es
	})
}

// Heuristic returns an admissible estimate of the cost from a cell to goal:
// the step distance under gg.Conn times the cheapest passable cell value.
// If any passable cell costs 0 or less the estimate is constant zero.
func (gg *GridGraph) Heuristic(goal Point) core.Heuristic[Point] {
	step := gg.minStep()
	if step <= 0 {
		return func(Point) int64 { return 0 }
	}
	if gg.Conn == Conn8 {
		return func(p Point) int64 { return int64(p.Chebyshev(goal)) * step }
	}
	return func(p Point) int64 { return int64(p.Manhattan(goal)) * step }
}

func (gg *GridGraph) minStep() int64 {
	var best int64 = -1
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			if v < gg.LandThreshold {
				continue
			}
			if best < 0 || int64(v) < best {
				best = int64(v)
			}
		}
	}
	return best
}

// index maps p to a row-major index: y*Width + x.
func (gg *GridGraph) index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{idx % gg.Width, idx / gg.Width}
}
