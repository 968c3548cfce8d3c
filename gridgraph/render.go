package gridgraph

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	wallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")).Bold(true)
)

// Render draws gg as text, one line per row, each line ending in '\n'.
// Cells on path are drawn with opts.Mark. Parsed grids keep their original
// glyphs; otherwise walls are '#', values 0-9 are digits and larger values '+'.
func (gg *GridGraph) Render(path []Point, opts RenderOptions) string {
	mark := opts.Mark
	if mark == 0 {
		mark = '*'
	}
	onPath := make(map[Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if _, ok := onPath[p]; ok {
				writeCell(&sb, mark, pathStyle, opts.Color)
				continue
			}
			c := gg.glyph(p)
			switch {
			case !gg.Passable(p):
				writeCell(&sb, c, wallStyle, opts.Color)
			case c == 'S' || c == 'E':
				writeCell(&sb, c, markStyle, opts.Color)
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (gg *GridGraph) glyph(p Point) byte {
	if gg.glyphs != nil {
		return gg.glyphs[p.Y][p.X]
	}
	v := gg.Value(p)
	switch {
	case v < gg.LandThreshold:
		return '#'
	case v >= 0 && v <= 9:
		return byte('0' + v)
	default:
		return '+'
	}
}

func writeCell(sb *strings.Builder, c byte, style lipgloss.Style, color bool) {
	if !color {
		sb.WriteByte(c)
		return
	}
	sb.WriteString(style.Render(string(c)))
}
