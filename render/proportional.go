package render

import (
	"math"
	"strings"

	"github.com/tsawler/textus/layout"
)

// Proportional renders a row by scaling the horizontal gaps between
// fragments into runs of spaces. Narrow gaps collapse to a single
// space, wide gaps grow with the gap width up to MaxGapSpaces. All
// widths are measured against the row's median fragment height, so the
// renderer adapts to the text size of each row.
type Proportional struct {
	// SpaceScale is the width of one rendered space as a fraction of
	// the row's median fragment height
	SpaceScale float64

	// MinGapRatio is the gap width, in row median heights, above which
	// a gap is rendered proportionally instead of as a single space
	MinGapRatio float64

	// MaxGapSpaces caps the spaces rendered for a single gap
	MaxGapSpaces int
}

// NewProportional creates a proportional renderer with defaults.
func NewProportional() *Proportional {
	return &Proportional{
		SpaceScale:   0.5,
		MinGapRatio:  1.0,
		MaxGapSpaces: 10,
	}
}

// RenderRow assembles the row left to right, widening the output where
// the source fragments leave wide horizontal gaps. Fragments that
// touch or overlap are concatenated directly, which rejoins tokens the
// recognizer split mid-word.
func (p *Proportional) RenderRow(row *layout.Row) string {
	frags := row.FragmentsByX()
	height := row.MedianHeight()
	spaceWidth := p.SpaceScale * height
	threshold := p.MinGapRatio * height

	var sb strings.Builder
	prevRight := 0.0
	for i, frag := range frags {
		if i > 0 {
			gap := frag.Frame.X - prevRight
			switch {
			case spaceWidth > 0 && gap > threshold:
				n := int(math.Round(gap / spaceWidth))
				if n > p.MaxGapSpaces {
					n = p.MaxGapSpaces
				}
				if n < 1 {
					n = 1
				}
				sb.WriteString(strings.Repeat(" ", n))
			case gap > 0:
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.Text)
		prevRight = frag.Frame.Right()
	}

	return strings.TrimRight(sb.String(), " ")
}
