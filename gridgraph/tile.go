package gridgraph

import "fmt"

// Tile returns an n×n expansion of gg. The copy at tile (tx,ty) adds tx+ty
// to every passable cell, wrapping values above 9 back around to 1.
// Walls are copied unchanged. Markers keep their position in tile (0,0).
//
// Complexity: O(n²×W×H).
func (gg *GridGraph) Tile(n int) (*GridGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, n)
	}
	w, h := gg.Width*n, gg.Height*n
	values := make([][]int, h)
	var glyphs [][]byte
	if gg.glyphs != nil {
		glyphs = make([][]byte, h)
	}
	for y := 0; y < h; y++ {
		values[y] = make([]int, w)
		if glyphs != nil {
			glyphs[y] = make([]byte, w)
		}
		for x := 0; x < w; x++ {
			src := Point{x % gg.Width, y % gg.Height}
			shift := x/gg.Width + y/gg.Height
			v := gg.Value(src)
			if v >= gg.LandThreshold && shift > 0 {
				v = (v+shift-1)%9 + 1
			}
			values[y][x] = v
			if glyphs == nil {
				continue
			}
			switch {
			case shift == 0:
				glyphs[y][x] = gg.glyphs[src.Y][src.X]
			case v >= gg.LandThreshold:
				glyphs[y][x] = byte('0' + v)
			default:
				glyphs[y][x] = gg.glyphs[src.Y][src.X]
			}
		}
	}

	out, err := NewGridGraph(values, GridOptions{LandThreshold: gg.LandThreshold, Conn: gg.Conn})
	if err != nil {
		return nil, err
	}
	out.glyphs = glyphs
	if len(gg.markers) > 0 {
		out.markers = make(map[byte]Point, len(gg.markers))
		for k, p := range gg.markers {
			out.markers[k] = p
		}
	}

	return out, nil
}
