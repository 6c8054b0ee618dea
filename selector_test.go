package textus

import (
	"testing"

	"github.com/tsawler/textus/model"
)

func TestSelectStrategy_EngineMapping(t *testing.T) {
	tests := []struct {
		name       string
		meta       model.ScanMetadata
		nativeText string
		wantMode   Mode
		wantNative bool
		wantGrid   bool
	}{
		{
			name:       "documentai with native text",
			meta:       model.ScanMetadata{Engine: model.EngineDocumentAI},
			nativeText: "TOTAL 8.49",
			wantMode:   ModeClustered,
			wantNative: true,
			wantGrid:   true,
		},
		{
			name:     "documentai without native text",
			meta:     model.ScanMetadata{Engine: model.EngineDocumentAI},
			wantMode: ModeClustered,
			wantGrid: true,
		},
		{
			name:     "vision version 1",
			meta:     model.ScanMetadata{Engine: model.EngineVision, TextVersion: 1},
			wantMode: ModeParagraphs,
		},
		{
			name:     "vision version unset",
			meta:     model.ScanMetadata{Engine: model.EngineVision},
			wantMode: ModeParagraphs,
		},
		{
			name:     "vision version 2",
			meta:     model.ScanMetadata{Engine: model.EngineVision, TextVersion: 2},
			wantMode: ModeClustered,
			wantGrid: true,
		},
		{
			name:     "mlkit",
			meta:     model.ScanMetadata{Engine: model.EngineMLKit},
			wantMode: ModeClustered,
			wantGrid: true,
		},
		{
			name:     "tesseract",
			meta:     model.ScanMetadata{Engine: model.EngineTesseract},
			wantMode: ModeClustered,
			wantGrid: true,
		},
		{
			name:     "no engine",
			meta:     model.ScanMetadata{},
			wantMode: ModeClustered,
			wantGrid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := selectStrategy(tt.meta, tt.nativeText, defaultOptions())
			if plan.mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", plan.mode, tt.wantMode)
			}
			if plan.useNative != tt.wantNative {
				t.Errorf("useNative = %v, want %v", plan.useNative, tt.wantNative)
			}
			if plan.grid != tt.wantGrid {
				t.Errorf("grid = %v, want %v", plan.grid, tt.wantGrid)
			}
		})
	}
}

func TestSelectStrategy_PolicyDefaults(t *testing.T) {
	paragraphs := selectStrategy(
		model.ScanMetadata{Engine: model.EngineVision, TextVersion: 1}, "", defaultOptions())
	if paragraphs.policy.Geometric {
		t.Error("expected paragraph mode to use the median policy")
	}
	if paragraphs.policy.GroupingFactor != 0.7 {
		t.Errorf("expected paragraph grouping factor 0.7, got %v", paragraphs.policy.GroupingFactor)
	}

	clustered := selectStrategy(
		model.ScanMetadata{Engine: model.EngineMLKit}, "", defaultOptions())
	if !clustered.policy.Geometric {
		t.Error("expected clustered mode to use the geometric policy")
	}
	if clustered.policy.GroupingFactor != 0.5 {
		t.Errorf("expected clustered grouping factor 0.5, got %v", clustered.policy.GroupingFactor)
	}
}

func TestSelectStrategy_Overrides(t *testing.T) {
	opts := defaultOptions()
	opts.mode = ModeParagraphs
	plan := selectStrategy(model.ScanMetadata{Engine: model.EngineDocumentAI}, "native", opts)
	if plan.useNative {
		t.Error("expected forced mode to suppress native passthrough")
	}
	if plan.mode != ModeParagraphs {
		t.Errorf("expected forced paragraphs mode, got %q", plan.mode)
	}

	factor := 0.3
	opts = defaultOptions()
	opts.rowGroupingFactor = &factor
	plan = selectStrategy(model.ScanMetadata{}, "", opts)
	if plan.policy.GroupingFactor != 0.3 {
		t.Errorf("expected grouping factor override 0.3, got %v", plan.policy.GroupingFactor)
	}

	opts = defaultOptions()
	opts.policyName = "median"
	plan = selectStrategy(model.ScanMetadata{}, "", opts)
	if plan.policy.Geometric {
		t.Error("expected named policy to override the mode default")
	}

	opts = defaultOptions()
	opts.spacing = spacingProportional
	plan = selectStrategy(model.ScanMetadata{}, "", opts)
	if plan.grid {
		t.Error("expected proportional spacing override")
	}
}

func TestSelectStrategy_UnknownEngineWarns(t *testing.T) {
	plan := selectStrategy(model.ScanMetadata{Engine: "paddleocr"}, "", defaultOptions())
	if plan.mode != ModeClustered {
		t.Errorf("expected fallback to clustered, got %q", plan.mode)
	}
	if len(plan.warnings) != 1 || plan.warnings[0].Code != WarnUnknownEngine {
		t.Errorf("expected one unknown engine warning, got %v", plan.warnings)
	}

	known := selectStrategy(model.ScanMetadata{Engine: model.EngineTesseract}, "", defaultOptions())
	if len(known.warnings) != 0 {
		t.Errorf("expected no warnings for a known engine, got %v", known.warnings)
	}
}
