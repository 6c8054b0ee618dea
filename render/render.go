// Package render assembles clustered rows into layout preserving
// plain text. Two strategies are provided: Grid anchors each fragment
// onto a fixed-width character grid so columns line up across rows,
// and Proportional scales the horizontal gaps between fragments into
// runs of spaces.
package render

import (
	"strings"

	"github.com/tsawler/textus/layout"
)

// RowRenderer renders one clustered row as a single line of text.
type RowRenderer interface {
	RenderRow(row *layout.Row) string
}

// Lines renders rows top to bottom and joins them with newlines. No
// trailing newline is appended.
func Lines(rows []*layout.Row, renderer RowRenderer) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = renderer.RenderRow(row)
	}
	return strings.Join(lines, "\n")
}
