package textus

import (
	"fmt"
	"strings"

	"github.com/tsawler/textus/layout"
	"github.com/tsawler/textus/model"
)

// strategy is the resolved reconstruction plan for one scan.
type strategy struct {
	mode      Mode
	useNative bool
	policy    layout.RowPolicy
	grid      bool
	warnings  []Warning
}

// selectStrategy resolves the mode, clustering policy, and renderer
// for a scan from its metadata and the configured options. It is a
// total function: every metadata combination maps to a usable plan.
//
// With ModeAuto, Document AI scans that carry native text skip
// reconstruction entirely, Vision scans follow their text version
// (version 1 emits paragraph boxes, version 2 emits words), and all
// other engines are clustered at word granularity. An explicit mode
// always reconstructs from fragments.
func selectStrategy(meta model.ScanMetadata, nativeText string, opts ReconstructionOptions) strategy {
	var plan strategy

	mode := opts.mode
	if mode == ModeAuto {
		switch meta.Engine {
		case model.EngineDocumentAI:
			if strings.TrimSpace(nativeText) != "" {
				plan.useNative = true
			}
			mode = ModeClustered
		case model.EngineVision:
			if meta.TextVersion <= 1 {
				mode = ModeParagraphs
			} else {
				mode = ModeClustered
			}
		case model.EngineMLKit, model.EngineTesseract:
			mode = ModeClustered
		case "":
			// Unspecified engine, assume word granularity
			mode = ModeClustered
		default:
			mode = ModeClustered
			plan.warnings = append(plan.warnings, Warning{
				Code: WarnUnknownEngine,
				Message: fmt.Sprintf("unrecognized ocr engine %q, clustering at word granularity",
					meta.Engine),
			})
		}
	}
	plan.mode = mode

	if opts.policyName != "" {
		// Validated against the registry before selection runs
		plan.policy, _ = layout.GetPolicy(opts.policyName)
	} else {
		plan.policy = defaultPolicy(mode)
	}
	if opts.rowGroupingFactor != nil {
		plan.policy.GroupingFactor = *opts.rowGroupingFactor
	}

	switch opts.spacing {
	case spacingGrid:
		plan.grid = true
	case spacingProportional:
		plan.grid = false
	default:
		plan.grid = mode == ModeClustered
	}

	return plan
}

// defaultPolicy returns the clustering policy a mode uses when none is
// named explicitly. Paragraph granularity tolerates a wider grouping
// band because its boxes span whole lines.
func defaultPolicy(mode Mode) layout.RowPolicy {
	if mode == ModeParagraphs {
		policy := layout.MedianPolicy()
		policy.GroupingFactor = 0.7
		return policy
	}
	return layout.GeometricPolicy()
}
