package textus

import (
	"fmt"
	"strings"

	"github.com/tsawler/textus/model"
)

// Warning codes reported by reconstruction.
const (
	// WarnUnknownEngine is reported when the scan names an OCR engine
	// the selector does not recognize
	WarnUnknownEngine = "unknown-engine"

	// WarnFrameOutOfRange is reported when fragments lie outside the
	// normalized scan space
	WarnFrameOutOfRange = "frame-out-of-range"

	// WarnMostlyEmptyText is reported when most fragments carry no
	// visible text
	WarnMostlyEmptyText = "mostly-empty-text"
)

// Warning describes a non-fatal issue encountered during
// reconstruction. Processing succeeded but results may be imperfect.
type Warning struct {
	// Code identifies the warning category
	Code string

	// Message is a human readable description
	Message string
}

// FormatWarnings formats a warning slice as a single line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}
	return strings.Join(messages, "; ")
}

// checkScanQuality inspects filtered fragments for traits that degrade
// reconstruction quality and returns a warning for each one found.
func checkScanQuality(fragments []model.TextFragment) []Warning {
	if len(fragments) == 0 {
		return nil
	}

	outOfRange := 0
	empty := 0
	for _, f := range fragments {
		if !f.Frame.IsValid() {
			outOfRange++
		}
		if strings.TrimSpace(f.Text) == "" {
			empty++
		}
	}

	var warnings []Warning
	if outOfRange > 0 {
		warnings = append(warnings, Warning{
			Code: WarnFrameOutOfRange,
			Message: fmt.Sprintf("%d of %d fragments lie outside the normalized frame",
				outOfRange, len(fragments)),
		})
	}
	if empty*2 > len(fragments) {
		warnings = append(warnings, Warning{
			Code:    WarnMostlyEmptyText,
			Message: "more than half of the fragments carry no visible text",
		})
	}
	return warnings
}
