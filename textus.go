// Package textus reconstructs layout preserving plain text from
// spatially positioned OCR fragments. Receipts, invoices, and tables
// keep their visual row and column structure when the fragments are
// clustered into rows and rendered onto a line grid.
//
// Basic usage:
//
//	text, warnings, err := textus.FromScan(scan).Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textus.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := textus.FromScan(scan).
//	    LineWidth(64).
//	    MinConfidence(0.5).
//	    Clustered().
//	    Text()
//
// For lower-level control the layout and render packages are also
// available.
package textus

import (
	"go.uber.org/zap"

	"github.com/tsawler/textus/model"
)

// FromScan creates a Reconstructor for a scan result. The scan's
// metadata drives strategy selection unless a mode is forced through
// the fluent configuration methods.
//
// Example:
//
//	text, warnings, err := textus.FromScan(scan).Text()
func FromScan(scan model.ScanResult) *Reconstructor {
	return &Reconstructor{
		scan:    scan,
		options: defaultOptions(),
		logger:  zap.NewNop(),
	}
}

// FromFragments creates a Reconstructor for bare fragments with no
// metadata. Without metadata the fragments are clustered at word
// granularity.
//
// Example:
//
//	text, _, err := textus.FromFragments(fragments).Text()
func FromFragments(fragments []model.TextFragment) *Reconstructor {
	return FromScan(model.ScanResult{Fragments: fragments})
}

// Reconstruct converts a scan to text with default options, discarding
// warnings. It is shorthand for FromScan(scan).Text().
func Reconstruct(scan model.ScanResult) (string, error) {
	text, _, err := FromScan(scan).Text()
	return text, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := textus.Must(textus.Reconstruct(scan))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Fragments() and
// panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	text := textus.MustText(textus.FromScan(scan).Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
