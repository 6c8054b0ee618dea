package model

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBBox_Edges(t *testing.T) {
	b := NewBBox(0.1, 0.2, 0.3, 0.05)

	if !almostEqual(b.Left(), 0.1) {
		t.Errorf("Left: expected 0.1, got %v", b.Left())
	}
	if !almostEqual(b.Right(), 0.4) {
		t.Errorf("Right: expected 0.4, got %v", b.Right())
	}
	if !almostEqual(b.Top(), 0.2) {
		t.Errorf("Top: expected 0.2, got %v", b.Top())
	}
	if !almostEqual(b.Bottom(), 0.25) {
		t.Errorf("Bottom: expected 0.25, got %v", b.Bottom())
	}
	if !almostEqual(b.MidY(), 0.225) {
		t.Errorf("MidY: expected 0.225, got %v", b.MidY())
	}
}

func TestBBox_MidY_ZeroHeight(t *testing.T) {
	b := NewBBox(0.5, 0.3, 0.1, 0)
	if !almostEqual(b.MidY(), 0.3) {
		t.Errorf("Expected midY 0.3 for zero-height box, got %v", b.MidY())
	}
}

func TestBBox_Union(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.2, 0.05)
	b := NewBBox(0.5, 0.12, 0.2, 0.05)

	u := a.Union(b)
	if !almostEqual(u.X, 0.1) || !almostEqual(u.Y, 0.1) {
		t.Errorf("Union origin: expected (0.1, 0.1), got (%v, %v)", u.X, u.Y)
	}
	if !almostEqual(u.Right(), 0.7) {
		t.Errorf("Union right: expected 0.7, got %v", u.Right())
	}
	if !almostEqual(u.Bottom(), 0.17) {
		t.Errorf("Union bottom: expected 0.17, got %v", u.Bottom())
	}
}

func TestBBox_Intersection(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.3, 0.1)
	b := NewBBox(0.3, 0.15, 0.3, 0.1)

	if !a.Intersects(b) {
		t.Fatal("Expected boxes to intersect")
	}

	i := a.Intersection(b)
	if !almostEqual(i.X, 0.3) || !almostEqual(i.Y, 0.15) {
		t.Errorf("Intersection origin: expected (0.3, 0.15), got (%v, %v)", i.X, i.Y)
	}
	if !almostEqual(i.Width, 0.1) || !almostEqual(i.Height, 0.05) {
		t.Errorf("Intersection size: expected 0.1x0.05, got %vx%v", i.Width, i.Height)
	}

	far := NewBBox(0.8, 0.8, 0.1, 0.1)
	if a.Intersects(far) {
		t.Error("Expected disjoint boxes not to intersect")
	}
	if got := a.Intersection(far); !got.IsEmpty() {
		t.Errorf("Expected empty intersection, got %+v", got)
	}
}

func TestBBox_HorizontalOverlaps(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.2, 0.05)

	if !a.HorizontalOverlaps(NewBBox(0.25, 0.5, 0.2, 0.05)) {
		t.Error("Expected horizontal overlap for touching X ranges")
	}
	if a.HorizontalOverlaps(NewBBox(0.5, 0.1, 0.2, 0.05)) {
		t.Error("Expected no horizontal overlap for disjoint X ranges")
	}
}

func TestBBox_VerticalOverlapRatio(t *testing.T) {
	a := NewBBox(0.1, 0.10, 0.2, 0.03)
	b := NewBBox(0.5, 0.105, 0.2, 0.03)

	// Shared extent is 0.105..0.13 = 0.025 of a 0.03 height.
	got := a.VerticalOverlapRatio(b)
	want := 0.025 / 0.03
	if !almostEqual(got, want) {
		t.Errorf("Expected overlap ratio %v, got %v", want, got)
	}

	c := NewBBox(0.1, 0.5, 0.2, 0.03)
	if a.VerticalOverlapRatio(c) != 0 {
		t.Errorf("Expected 0 overlap for disjoint rows, got %v", a.VerticalOverlapRatio(c))
	}
}

func TestBBox_VerticalOverlapRatio_ZeroHeight(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.2, 0)
	b := NewBBox(0.1, 0.1, 0.2, 0.03)

	if got := a.VerticalOverlapRatio(b); got != 0 {
		t.Errorf("Expected 0 for zero-height box, got %v", got)
	}
	if got := b.VerticalOverlapRatio(a); got != 0 {
		t.Errorf("Expected 0 for zero-height argument, got %v", got)
	}
}

func TestBBox_Validity(t *testing.T) {
	if !NewBBox(0.1, 0.1, 0.2, 0.05).IsValid() {
		t.Error("Expected in-range box to be valid")
	}
	if NewBBox(0.9, 0.1, 0.2, 0.05).IsValid() {
		t.Error("Expected box extending past 1.0 to be invalid")
	}
	if !NewBBox(0.5, 0.5, 0, 0).IsValid() {
		t.Error("Expected zero-size box to be valid (tolerated input)")
	}
	if !NewBBox(0.5, 0.5, 0, 0.1).IsEmpty() {
		t.Error("Expected zero-width box to be empty")
	}
}

func TestFilterByConfidence(t *testing.T) {
	fragments := []TextFragment{
		{Text: "A", Frame: NewBBox(0.1, 0.1, 0.1, 0.02), Confidence: Conf(0.9)},
		{Text: "B", Frame: NewBBox(0.4, 0.1, 0.1, 0.02), Confidence: Conf(0.2)},
		{Text: "C", Frame: NewBBox(0.7, 0.1, 0.1, 0.02)},
	}

	filtered := FilterByConfidence(fragments, Conf(0.5))
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(filtered))
	}
	if filtered[0].Text != "A" || filtered[1].Text != "C" {
		t.Errorf("Expected [A C], got [%s %s]", filtered[0].Text, filtered[1].Text)
	}

	// Fragments without a confidence always pass.
	strict := FilterByConfidence(fragments, Conf(0.99))
	if len(strict) != 1 || strict[0].Text != "C" {
		t.Errorf("Expected only the unscored fragment to pass, got %d", len(strict))
	}
}

func TestFilterByConfidence_NoThreshold(t *testing.T) {
	fragments := []TextFragment{
		{Text: "A", Confidence: Conf(0.9)},
		{Text: "B", Confidence: Conf(0.2)},
	}

	filtered := FilterByConfidence(fragments, nil)
	if len(filtered) != 2 {
		t.Errorf("Expected all fragments with nil threshold, got %d", len(filtered))
	}
}

func TestFilterByConfidence_DoesNotMutateInput(t *testing.T) {
	fragments := []TextFragment{
		{Text: "A", Confidence: Conf(0.9)},
		{Text: "B", Confidence: Conf(0.2)},
		{Text: "C", Confidence: Conf(0.8)},
	}

	_ = FilterByConfidence(fragments, Conf(0.5))

	if fragments[1].Text != "B" {
		t.Error("Input slice was modified by filtering")
	}
	if len(fragments) != 3 {
		t.Errorf("Input length changed: %d", len(fragments))
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0.5},
		{"odd", []float64{0.3, 0.1, 0.2}, 0.2},
		{"even", []float64{0.4, 0.1, 0.2, 0.3}, 0.25},
		{"outlier resistant", []float64{0.1, 0.1, 0.1, 0.1, 9.0}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedian_DoesNotSortInput(t *testing.T) {
	values := []float64{0.3, 0.1, 0.2}
	_ = Median(values)
	if values[0] != 0.3 || values[1] != 0.1 || values[2] != 0.2 {
		t.Errorf("Input slice was reordered: %v", values)
	}
}

func TestMedianHeight(t *testing.T) {
	fragments := []TextFragment{
		{Frame: NewBBox(0, 0.1, 0.1, 0.02)},
		{Frame: NewBBox(0, 0.2, 0.1, 0.03)},
		{Frame: NewBBox(0, 0.3, 0.1, 0.5)},
	}

	if got := MedianHeight(fragments); !almostEqual(got, 0.03) {
		t.Errorf("Expected median height 0.03, got %v", got)
	}
	if got := MedianHeight(nil); got != 0 {
		t.Errorf("Expected 0 for no fragments, got %v", got)
	}
}
