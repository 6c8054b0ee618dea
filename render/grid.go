package render

import (
	"math"
	"strings"

	"github.com/tsawler/textus/layout"
)

// Grid renders a row onto a fixed-width character grid. A fragment is
// anchored at the column given by its normalized X position, which
// keeps verticals such as receipt price columns aligned across rows.
type Grid struct {
	// LineWidth is the width of the character grid
	LineWidth int
}

// NewGrid creates a grid renderer with the given line width.
func NewGrid(lineWidth int) *Grid {
	return &Grid{LineWidth: lineWidth}
}

// RenderRow places the row's fragments onto the grid left to right and
// returns the assembled line with trailing whitespace removed.
//
// The anchor column is round(x * LineWidth). When a fragment's anchor
// falls behind the write cursor it is pushed right so that at least
// one space separates it from the previous fragment. Characters past
// the right edge of the grid are dropped.
func (g *Grid) RenderRow(row *layout.Row) string {
	if g.LineWidth <= 0 {
		return ""
	}

	buf := make([]rune, g.LineWidth)
	for i := range buf {
		buf[i] = ' '
	}

	cursor := 0
	for _, frag := range row.FragmentsByX() {
		col := int(math.Round(frag.Frame.X * float64(g.LineWidth)))
		if col < cursor {
			col = cursor
		}
		for _, r := range frag.Text {
			if col >= g.LineWidth {
				break
			}
			buf[col] = r
			col++
		}
		cursor = col + 1
	}

	return strings.TrimRight(string(buf), " ")
}
