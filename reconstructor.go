package textus

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/textus/layout"
	"github.com/tsawler/textus/model"
	"github.com/tsawler/textus/render"
)

// Reconstructor provides a fluent interface for converting a scan into
// layout preserving text. Each configuration method returns a new
// Reconstructor instance, making it safe for concurrent use and
// allowing method chaining.
type Reconstructor struct {
	// Source
	scan model.ScanResult

	// Configuration
	options ReconstructionOptions
	logger  *zap.Logger

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during configuration
	warnings []Warning
}

// clone creates a shallow copy of the Reconstructor with a deep copy
// of options. This ensures immutability - each chain method returns a
// new instance.
func (r *Reconstructor) clone() *Reconstructor {
	return &Reconstructor{
		scan:     r.scan,
		options:  r.options.clone(),
		logger:   r.logger,
		err:      r.err,
		warnings: append([]Warning(nil), r.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Reconstructor instance)
// ============================================================================

// LineWidth sets the character grid width used by grid spacing.
//
// Example:
//
//	text, _, err := textus.FromScan(scan).LineWidth(64).Text()
func (r *Reconstructor) LineWidth(width int) *Reconstructor {
	newRec := r.clone()
	newRec.options.lineWidth = width
	return newRec
}

// MinConfidence drops fragments whose confidence falls below min.
// Fragments without a confidence score are always kept.
//
// Example:
//
//	text, _, err := textus.FromScan(scan).MinConfidence(0.5).Text()
func (r *Reconstructor) MinConfidence(min float64) *Reconstructor {
	newRec := r.clone()
	newRec.options.minConfidence = &min
	return newRec
}

// RowGroupingFactor overrides the row grouping factor. The factor
// scales the median fragment height to produce the vertical distance
// within which fragments join the same row.
func (r *Reconstructor) RowGroupingFactor(factor float64) *Reconstructor {
	newRec := r.clone()
	newRec.options.rowGroupingFactor = &factor
	return newRec
}

// Clustered forces word granularity clustering regardless of the scan
// metadata.
func (r *Reconstructor) Clustered() *Reconstructor {
	newRec := r.clone()
	newRec.options.mode = ModeClustered
	return newRec
}

// Paragraphs forces paragraph granularity clustering regardless of the
// scan metadata.
func (r *Reconstructor) Paragraphs() *Reconstructor {
	newRec := r.clone()
	newRec.options.mode = ModeParagraphs
	return newRec
}

// Policy selects a registered row policy by name. The built in names
// are "median" and "geometric"; custom policies can be added with
// layout.RegisterPolicy.
//
// Example:
//
//	text, _, err := textus.FromScan(scan).Policy("median").Text()
func (r *Reconstructor) Policy(name string) *Reconstructor {
	newRec := r.clone()
	newRec.options.policyName = name
	return newRec
}

// GridSpacing renders rows on a fixed-width character grid so columns
// line up across rows.
func (r *Reconstructor) GridSpacing() *Reconstructor {
	newRec := r.clone()
	newRec.options.spacing = spacingGrid
	return newRec
}

// ProportionalSpacing renders rows by scaling the gaps between
// fragments into runs of spaces.
func (r *Reconstructor) ProportionalSpacing() *Reconstructor {
	newRec := r.clone()
	newRec.options.spacing = spacingProportional
	return newRec
}

// WithLogger attaches a logger used for debug output during
// reconstruction.
func (r *Reconstructor) WithLogger(logger *zap.Logger) *Reconstructor {
	newRec := r.clone()
	if logger != nil {
		newRec.logger = logger
	}
	return newRec
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text reconstructs the scan into layout preserving plain text.
//
// Returns the text, any warnings encountered during processing, and an
// error if the configuration was invalid. Warnings indicate non-fatal
// issues (e.g., fragments outside the normalized frame) where
// reconstruction succeeded but results may be imperfect. An empty scan
// reconstructs to an empty string.
//
// Example:
//
//	text, warnings, err := textus.FromScan(scan).Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textus.FormatWarnings(warnings))
//	}
func (r *Reconstructor) Text() (string, []Warning, error) {
	if r.err != nil {
		return "", nil, r.err
	}
	if err := r.options.validate(); err != nil {
		return "", nil, err
	}

	plan := selectStrategy(r.scan.Metadata, r.scan.NativeText, r.options)
	warnings := append(append([]Warning(nil), r.warnings...), plan.warnings...)

	if plan.useNative {
		r.logger.Debug("using native text",
			zap.String("engine", string(r.scan.Metadata.Engine)),
			zap.Int("length", len(r.scan.NativeText)))
		return strings.TrimRight(r.scan.NativeText, " \t\r\n"), warnings, nil
	}

	fragments := model.FilterByConfidence(r.scan.Fragments, r.options.minConfidence)
	warnings = append(warnings, checkScanQuality(fragments)...)
	if len(fragments) == 0 {
		return "", warnings, nil
	}

	rowLayout := layout.NewClustererWithPolicy(plan.policy).Cluster(fragments)
	r.logger.Debug("clustered fragments",
		zap.String("mode", string(plan.mode)),
		zap.Int("fragments", len(fragments)),
		zap.Int("rows", rowLayout.RowCount()),
		zap.Float64("threshold", rowLayout.Threshold))

	var renderer render.RowRenderer
	if plan.grid {
		renderer = render.NewGrid(r.options.lineWidth)
	} else {
		renderer = render.NewProportional()
	}
	return render.Lines(rowLayout.Rows, renderer), warnings, nil
}

// Rows clusters the scan's fragments and returns the detected rows,
// sorted top to bottom. Unlike Text, Rows always works from the
// fragments; native text is never consulted.
//
// Example:
//
//	rows, _, err := textus.FromScan(scan).Rows()
//	for _, row := range rows {
//	    fmt.Println(row.Len(), row.MedianMidY())
//	}
func (r *Reconstructor) Rows() ([]*layout.Row, []Warning, error) {
	rowLayout, warnings, err := r.cluster()
	if err != nil {
		return nil, nil, err
	}
	return rowLayout.Rows, warnings, nil
}

// Fragments filters and clusters the scan's fragments and returns them
// in reading order: rows top to bottom, members left to right.
func (r *Reconstructor) Fragments() ([]model.TextFragment, []Warning, error) {
	rowLayout, warnings, err := r.cluster()
	if err != nil {
		return nil, nil, err
	}
	return rowLayout.Fragments(), warnings, nil
}

// cluster runs the shared filter and clustering pipeline.
func (r *Reconstructor) cluster() (*layout.RowLayout, []Warning, error) {
	if r.err != nil {
		return nil, nil, r.err
	}
	if err := r.options.validate(); err != nil {
		return nil, nil, err
	}

	plan := selectStrategy(r.scan.Metadata, r.scan.NativeText, r.options)
	warnings := append(append([]Warning(nil), r.warnings...), plan.warnings...)

	fragments := model.FilterByConfidence(r.scan.Fragments, r.options.minConfidence)
	warnings = append(warnings, checkScanQuality(fragments)...)

	rowLayout := layout.NewClustererWithPolicy(plan.policy).Cluster(fragments)
	r.logger.Debug("clustered fragments",
		zap.String("mode", string(plan.mode)),
		zap.Int("fragments", len(fragments)),
		zap.Int("rows", rowLayout.RowCount()))
	return rowLayout, warnings, nil
}
