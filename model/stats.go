package model

import "sort"

// Median returns the median of a slice of values without modifying
// it. Even-length inputs yield the mean of the two middle values.
// An empty slice yields 0.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// MedianHeight returns the median fragment height, the reference
// scale for clustering thresholds. An empty slice yields 0.
func MedianHeight(fragments []TextFragment) float64 {
	if len(fragments) == 0 {
		return 0
	}

	heights := make([]float64, len(fragments))
	for i, f := range fragments {
		heights[i] = f.Frame.Height
	}
	return Median(heights)
}
