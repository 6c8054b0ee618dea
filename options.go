package textus

import (
	"fmt"

	"github.com/tsawler/textus/layout"
)

// Mode selects the reconstruction strategy.
type Mode string

const (
	// ModeAuto derives the mode from the scan metadata
	ModeAuto Mode = ""

	// ModeParagraphs suits line or paragraph granularity fragments
	ModeParagraphs Mode = "paragraphs"

	// ModeClustered suits word granularity fragments
	ModeClustered Mode = "clustered"
)

// spacingKind selects the row renderer.
type spacingKind int

const (
	spacingAuto spacingKind = iota
	spacingGrid
	spacingProportional
)

// ReconstructionOptions holds configuration for text reconstruction.
type ReconstructionOptions struct {
	// Output shaping
	lineWidth int

	// Fragment filtering
	minConfidence *float64

	// Row clustering
	rowGroupingFactor *float64
	policyName        string

	// Strategy selection
	mode    Mode
	spacing spacingKind
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() ReconstructionOptions {
	return ReconstructionOptions{
		lineWidth: 56,
		mode:      ModeAuto,
		spacing:   spacingAuto,
	}
}

// clone creates a deep copy of ReconstructionOptions.
func (o ReconstructionOptions) clone() ReconstructionOptions {
	newOpts := ReconstructionOptions{
		lineWidth:  o.lineWidth,
		policyName: o.policyName,
		mode:       o.mode,
		spacing:    o.spacing,
	}

	// Deep copy optional values
	if o.minConfidence != nil {
		v := *o.minConfidence
		newOpts.minConfidence = &v
	}
	if o.rowGroupingFactor != nil {
		v := *o.rowGroupingFactor
		newOpts.rowGroupingFactor = &v
	}

	return newOpts
}

// validate rejects configurations that violate the options contract.
func (o ReconstructionOptions) validate() error {
	if o.lineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %d", o.lineWidth)
	}
	if o.minConfidence != nil && (*o.minConfidence < 0 || *o.minConfidence > 1) {
		return fmt.Errorf("minimum confidence must be between 0 and 1, got %v", *o.minConfidence)
	}
	if o.rowGroupingFactor != nil && *o.rowGroupingFactor <= 0 {
		return fmt.Errorf("row grouping factor must be positive, got %v", *o.rowGroupingFactor)
	}
	if o.policyName != "" {
		if _, ok := layout.GetPolicy(o.policyName); !ok {
			return fmt.Errorf("unknown row policy %q", o.policyName)
		}
	}
	switch o.mode {
	case ModeAuto, ModeParagraphs, ModeClustered:
	default:
		return fmt.Errorf("unknown mode %q", o.mode)
	}
	return nil
}
