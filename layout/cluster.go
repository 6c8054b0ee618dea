// Package layout groups spatially positioned text fragments into
// visual rows. Clustering is driven by a RowPolicy: the median policy
// groups on vertical center proximity alone, while the geometric
// policy adds height, overlap, and growth gates for word granularity
// input where centers of adjacent lines can fall within the proximity
// threshold.
package layout

import (
	"math"
	"sort"

	"github.com/tsawler/textus/model"
)

// RowLayout is the result of clustering a set of fragments.
type RowLayout struct {
	// Rows are the detected rows, sorted top to bottom by median mid-Y
	Rows []*Row

	// TypicalHeight is the reference height the thresholds were
	// derived from
	TypicalHeight float64

	// Threshold is the mid-Y proximity threshold that was applied
	Threshold float64

	// Policy is the policy used for clustering
	Policy RowPolicy
}

// RowCount returns the number of detected rows.
func (l *RowLayout) RowCount() int {
	return len(l.Rows)
}

// Fragments returns all fragments in reading order: rows top to
// bottom, members left to right.
func (l *RowLayout) Fragments() []model.TextFragment {
	var out []model.TextFragment
	for _, row := range l.Rows {
		out = append(out, row.FragmentsByX()...)
	}
	return out
}

// Clusterer groups fragments into rows according to a RowPolicy.
type Clusterer struct {
	policy RowPolicy
}

// NewClusterer creates a clusterer with the median policy.
func NewClusterer() *Clusterer {
	return &Clusterer{
		policy: MedianPolicy(),
	}
}

// NewClustererWithPolicy creates a clusterer with a custom policy.
func NewClustererWithPolicy(policy RowPolicy) *Clusterer {
	return &Clusterer{
		policy: policy,
	}
}

// Policy returns the clusterer's policy.
func (c *Clusterer) Policy() RowPolicy {
	return c.policy
}

// Cluster partitions fragments into visual rows.
//
// Fragments are processed in ascending mid-Y order. Each fragment
// joins the nearest existing row whose median mid-Y lies strictly
// within the proximity threshold and which passes the policy's gates,
// or seeds a new row. The threshold is GroupingFactor times the median
// fragment height of the input, floored at MinHeightFloor so that
// degenerate heights cannot collapse it to zero.
func (c *Clusterer) Cluster(fragments []model.TextFragment) *RowLayout {
	layout := &RowLayout{Policy: c.policy}
	if len(fragments) == 0 {
		return layout
	}

	typical := model.MedianHeight(fragments)
	if typical < c.policy.MinHeightFloor {
		typical = c.policy.MinHeightFloor
	}
	layout.TypicalHeight = typical
	layout.Threshold = c.policy.GroupingFactor * typical

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frame.MidY() < sorted[j].Frame.MidY()
	})

	var rows []*Row
	for _, frag := range sorted {
		idx := c.nearestRow(rows, frag, typical, layout.Threshold)
		if idx >= 0 {
			rows[idx].Add(frag)
		} else {
			rows = append(rows, NewRow(frag))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MedianMidY() < rows[j].MedianMidY()
	})
	layout.Rows = rows
	return layout
}

// nearestRow returns the index of the closest admissible row for a
// fragment, or -1 if no row qualifies. Distance ties keep the lowest
// row index.
func (c *Clusterer) nearestRow(rows []*Row, frag model.TextFragment, typical, threshold float64) int {
	best := -1
	bestDist := math.MaxFloat64
	midY := frag.Frame.MidY()
	for i, row := range rows {
		dist := math.Abs(row.MedianMidY() - midY)
		if dist >= threshold {
			continue
		}
		if c.policy.Geometric && !c.admits(row, frag, typical) {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// admits applies the geometric gates. A fragment must be height
// compatible with the row, must vertically overlap it (or sit close to
// its centerline), and must not grow the merged bounds past the limit
// for its arrangement: stacked fragments share horizontal extent,
// skewed fragments do not.
func (c *Clusterer) admits(row *Row, frag model.TextFragment, typical float64) bool {
	if heightRatio(frag.Frame.Height, row.MedianHeight()) < c.policy.MinHeightRatio {
		return false
	}

	bounds := row.Bounds()
	overlap := frag.Frame.VerticalOverlapRatio(bounds)
	centerDist := math.Abs(frag.Frame.MidY() - row.MedianMidY())
	if overlap < c.policy.MinOverlapRatio && centerDist > c.policy.MaxCenterOffset*typical {
		return false
	}

	merged := bounds.Union(frag.Frame)
	limit := c.policy.SkewedGrowthLimit
	if frag.Frame.HorizontalOverlaps(bounds) {
		limit = c.policy.StackedGrowthLimit
	}
	return merged.Height <= limit*typical
}

// heightRatio returns min(a,b)/max(a,b), or 0 when the larger value is
// not positive.
func heightRatio(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b <= 0 {
		return 0
	}
	return a / b
}
