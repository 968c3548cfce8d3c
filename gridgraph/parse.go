package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const wall = -1

// Parse reads an ASCII grid, one row per line. Recognized cells:
//
//	#        wall
//	.        open, cost 1
//	0-9      open, cost is the digit
//	S, E     open, cost 1, recorded as markers
//
// Blank lines are ignored. The resulting grid has LandThreshold 0.
func Parse(r io.Reader, conn Connectivity) (*GridGraph, error) {
	var (
		values  [][]int
		glyphs  [][]byte
		markers = make(map[byte]Point)
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := len(values)
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch {
			case c == '#':
				row[x] = wall
			case c == '.':
				row[x] = 1
			case c == 'S' || c == 'E':
				row[x] = 1
				markers[c] = Point{x, y}
			case c >= '0' && c <= '9':
				row[x] = int(c - '0')
			default:
				return nil, fmt.Errorf("%w %q at %d,%d", ErrBadCell, c, x, y)
			}
		}
		values = append(values, row)
		glyphs = append(glyphs, []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	gg, err := NewGridGraph(values, GridOptions{LandThreshold: 0, Conn: conn})
	if err != nil {
		return nil, err
	}
	gg.glyphs = glyphs
	gg.markers = markers

	return gg, nil
}

// ParseString is Parse over a string.
func ParseString(s string, conn Connectivity) (*GridGraph, error) {
	return Parse(strings.NewReader(s), conn)
}
