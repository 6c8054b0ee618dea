package model

import "math"

// BBox represents a bounding box in normalized scan space:
// origin top-left, all values fractions of the image size in [0,1].
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// MidX returns the horizontal center.
func (b BBox) MidX() float64 {
	return b.X + b.Width/2
}

// MidY returns the vertical center, the primary clustering key.
func (b BBox) MidY() float64 {
	return b.Y + b.Height/2
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Intersects checks if two bounding boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the overlapping region of two boxes, or the
// zero box when they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// HorizontalOverlaps checks if the X extents of two boxes overlap.
func (b BBox) HorizontalOverlaps(other BBox) bool {
	return b.Right() >= other.Left() && b.Left() <= other.Right()
}

// VerticalOverlap returns the length of the shared Y extent of two
// boxes, or 0 when they do not overlap vertically.
func (b BBox) VerticalOverlap(other BBox) float64 {
	overlap := math.Min(b.Bottom(), other.Bottom()) - math.Max(b.Top(), other.Top())
	if overlap < 0 {
		return 0
	}
	return overlap
}

// VerticalOverlapRatio returns the shared Y extent as a fraction of
// the smaller of the two heights. Returns 0 when either height is
// zero or negative.
func (b BBox) VerticalOverlapRatio(other BBox) float64 {
	minHeight := math.Min(b.Height, other.Height)
	if minHeight <= 0 {
		return 0
	}
	return b.VerticalOverlap(other) / minHeight
}

// IsEmpty returns true if the bounding box has zero area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid returns true if the box lies within normalized scan space
// with non-negative dimensions.
func (b BBox) IsValid() bool {
	return b.X >= 0 && b.Y >= 0 &&
		b.Width >= 0 && b.Height >= 0 &&
		b.Right() <= 1 && b.Bottom() <= 1
}
