package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an input character with no cell meaning.
	ErrBadCell = errors.New("gridgraph: unrecognized cell character")
	// ErrBadPoint indicates a point string that is not "x,y".
	ErrBadPoint = errors.New("gridgraph: point must be formatted as x,y")
	// ErrBadScale indicates a tiling factor below 1.
	ErrBadScale = errors.New("gridgraph: scale must be at least 1")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
