// Package model provides the data types shared by every stage of text
// reconstruction.
//
// This package defines the user-facing structures that OCR adapters
// produce and the reconstruction pipeline consumes. All coordinates
// live in normalized scan space: origin at the top-left of the source
// image, x/y/width/height expressed as fractions of the image
// dimensions in [0,1].
//
// # Fragments
//
// A [TextFragment] is one recognized span of text with its bounding
// box and an optional confidence score:
//
//	frag := model.TextFragment{
//	    Text:       "$3.99",
//	    Frame:      model.NewBBox(0.75, 0.105, 0.15, 0.03),
//	    Confidence: model.Conf(0.97),
//	}
//
// Fragments are immutable inputs: the pipeline never modifies a
// caller-supplied fragment, it only derives new aggregates from them.
//
// # Scans
//
// A [ScanResult] bundles the fragments from one scanned page with the
// engine's pre-assembled text (when the engine produces one) and the
// [ScanMetadata] describing what produced the input.
//
// # Geometry
//
// [BBox] supplies the geometric vocabulary used by clustering:
// union, intersection, vertical overlap, and height compatibility.
// Degenerate boxes (zero width or height) are legal inputs; every
// ratio computation guards its denominator and reports 0 rather than
// dividing by zero.
package model
