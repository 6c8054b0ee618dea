package layout

import (
	"sort"

	"github.com/tsawler/textus/model"
)

// Row accumulates the fragments assigned to one visual row during
// clustering. Members are kept in insertion order while sorted mid-Y
// and height lists are maintained incrementally, so the medians the
// clusterer compares against are always current.
type Row struct {
	fragments []model.TextFragment
	midYs     []float64 // sorted ascending
	heights   []float64 // sorted ascending
	bounds    model.BBox
}

// NewRow creates a row seeded with a single fragment.
func NewRow(seed model.TextFragment) *Row {
	r := &Row{}
	r.Add(seed)
	return r
}

// Add appends a fragment to the row and updates the running medians
// and the row bounds.
func (r *Row) Add(f model.TextFragment) {
	r.fragments = append(r.fragments, f)
	r.midYs = insertSorted(r.midYs, f.Frame.MidY())
	r.heights = insertSorted(r.heights, f.Frame.Height)
	if len(r.fragments) == 1 {
		r.bounds = f.Frame
	} else {
		r.bounds = r.bounds.Union(f.Frame)
	}
}

// Len returns the number of fragments in the row.
func (r *Row) Len() int {
	return len(r.fragments)
}

// Fragments returns the row's fragments in insertion order.
func (r *Row) Fragments() []model.TextFragment {
	out := make([]model.TextFragment, len(r.fragments))
	copy(out, r.fragments)
	return out
}

// FragmentsByX returns the row's fragments sorted left to right.
// Fragments sharing an X coordinate keep their insertion order.
func (r *Row) FragmentsByX() []model.TextFragment {
	out := r.Fragments()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frame.X < out[j].Frame.X
	})
	return out
}

// MedianMidY returns the median vertical center of the row's members.
func (r *Row) MedianMidY() float64 {
	return medianOfSorted(r.midYs)
}

// MedianHeight returns the median height of the row's members.
func (r *Row) MedianHeight() float64 {
	return medianOfSorted(r.heights)
}

// Bounds returns the union bounding box of the row's members.
func (r *Row) Bounds() model.BBox {
	return r.bounds
}

// Direction returns the dominant text direction across the row's
// members.
func (r *Row) Direction() Direction {
	ltr, rtl := 0, 0
	for _, f := range r.fragments {
		switch DetectDirection(f.Text) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	if rtl > ltr {
		return RTL
	}
	if ltr > 0 {
		return LTR
	}
	return Neutral
}

// insertSorted inserts v into an ascending slice, keeping it sorted.
func insertSorted(values []float64, v float64) []float64 {
	i := sort.SearchFloat64s(values, v)
	values = append(values, 0)
	copy(values[i+1:], values[i:])
	values[i] = v
	return values
}

// medianOfSorted returns the median of an ascending slice. An even
// count averages the two middle values. An empty slice returns 0.
func medianOfSorted(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
