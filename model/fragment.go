package model

// TextFragment is one OCR-recognized span of text with its position
// in normalized scan space. Fragments are immutable inputs to the
// reconstruction pipeline.
type TextFragment struct {
	// Text is the recognized string. Engines normally guarantee
	// non-empty spans, but empty strings are tolerated.
	Text string `json:"text"`

	// Frame is the bounding box, all values in [0,1] relative to the
	// source image. Zero width or height is tolerated; such fragments
	// render at a single point.
	Frame BBox `json:"frame"`

	// Confidence is the engine's recognition confidence in [0,1],
	// or nil when the producing engine does not expose one.
	Confidence *float64 `json:"confidence,omitempty"`
}

// Conf returns a pointer to v, for building fragments with literal
// confidence values.
func Conf(v float64) *float64 {
	return &v
}

// HasConfidence reports whether the producing engine attached a
// confidence score.
func (f TextFragment) HasConfidence() bool {
	return f.Confidence != nil
}

// FilterByConfidence returns the fragments whose confidence is either
// absent or at least min. A nil min keeps every fragment and returns
// the input unchanged. The input slice is never modified.
func FilterByConfidence(fragments []TextFragment, min *float64) []TextFragment {
	if min == nil {
		return fragments
	}

	filtered := make([]TextFragment, 0, len(fragments))
	for _, f := range fragments {
		if f.Confidence == nil || *f.Confidence >= *min {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
