package hocr

import (
	"strconv"
	"strings"
)

// Box is an hOCR bounding box in page pixel coordinates: x1,y1 the
// top-left corner, x2,y2 the bottom-right.
type Box struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Y2 - b.Y1
}

// Empty reports whether the box has no usable area.
func (b Box) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// ParseTitle splits an hOCR title attribute into its properties. The
// attribute packs semicolon-separated entries of a key followed by
// space-separated values:
//
//	"bbox 100 200 300 400; x_wconf 95"
//
// parses to {"bbox": ["100","200","300","400"], "x_wconf": ["95"]}.
func ParseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

// TitleBox extracts the bbox property from a title attribute. The
// second return is false when the title carries no well-formed bbox.
func TitleBox(title string) (Box, bool) {
	coords, ok := ParseTitle(title)["bbox"]
	if !ok || len(coords) < 4 {
		return Box{}, false
	}

	var vals [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(coords[i], 64)
		if err != nil {
			return Box{}, false
		}
		vals[i] = v
	}
	return Box{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, true
}
