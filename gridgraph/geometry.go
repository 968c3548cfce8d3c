package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is an integer position on the plane. X grows right, Y grows down.
type Point struct {
	X, Y int
}

// Vector is an integer displacement between two Points.
type Vector struct {
	DX, DY int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Vec is shorthand for Vector{DX: dx, DY: dy}.
func Vec(dx, dy int) Vector { return Vector{DX: dx, DY: dy} }

// Origin is (0,0).
var Origin = Point{}

// Cardinal holds the four orthogonal unit steps: N, E, S, W.
var Cardinal = []Vector{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Ordinal holds all eight unit steps: N, NE, E, SE, S, SW, W, NW.
var Ordinal = []Vector{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Add returns p moved by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.DX, p.Y + v.DY} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Manhattan returns the 4-connected grid distance between p and q.
func (p Point) Manhattan(q Point) int { return p.Sub(q).GridLen() }

// Chebyshev returns the 8-connected grid distance between p and q.
func (p Point) Chebyshev(q Point) int {
	v := p.Sub(q)
	return max(abs(v.DX), abs(v.DY))
}

// InBounds reports whether p lies inside the inclusive box lo..hi.
func (p Point) InBounds(lo, hi Point) bool {
	return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
}

// String renders p as "x,y", the same form ParsePoint accepts.
func (p Point) String() string { return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) }

// GridLen is the Manhattan length of v.
func (v Vector) GridLen() int { return abs(v.DX) + abs(v.DY) }

// ParsePoint parses "x,y" (spaces around either number are allowed).
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	return Point{x, y}, nil
}

// BoundingBox returns the smallest box containing every point.
// ok is false for an empty input.
func BoundingBox(points []Point) (lo, hi Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

