package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// LandThreshold is the minimum cell value that can be entered.
	// Cells below it are walls.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (zero-valued cells are walls) and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a rectangular 2D integer grid as a weighted graph over Points.
// Entering a passable cell costs that cell's value. It is immutable once built.
type GridGraph struct {
	Width, Height int
	// CellValues[y][x] holds the cell value at (x,y).
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int

	offsets []Vector
	// glyphs and markers are only set by Parse.
	glyphs  [][]byte
	markers map[byte]Point
}

// RenderOptions controls Render output.
type RenderOptions struct {
	// Color styles path cells and walls with terminal colors.
	Color bool
	// Mark is the glyph drawn on path cells. Zero means '*'.
	Mark byte
}
