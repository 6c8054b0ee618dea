package model

// Platform identifies the host platform that captured the scan.
// Unknown values pass through untouched; nothing in the pipeline
// depends on the platform being recognized.
type Platform string

// Known capture platforms.
const (
	PlatformUnknown Platform = ""
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformServer  Platform = "server"
)

// Engine identifies the OCR engine that produced a scan. The
// reconstruction mode is chosen by branching on these identifiers;
// unrecognized values select a safe default rather than failing.
type Engine string

// Known OCR engines.
const (
	// EngineVision is the Apple Vision text recognizer. Version 1
	// emits paragraph-granular observations, version 2 word boxes.
	EngineVision Engine = "vision"

	// EngineMLKit is the Google ML Kit text recognizer, emitting
	// line and element granularity fragments.
	EngineMLKit Engine = "mlkit"

	// EngineTesseract is Tesseract, emitting word boxes with
	// confidence scores.
	EngineTesseract Engine = "tesseract"

	// EngineDocumentAI is Google Document AI. It performs layout
	// clustering natively and returns column-aligned text of its own,
	// so reconstruction is usually skipped for it.
	EngineDocumentAI Engine = "documentai"
)

// ScanMetadata describes what produced a scan. It is read-only input
// to reconstruction mode selection; the pipeline branches on the
// engine identifier and text version but never validates the rest.
type ScanMetadata struct {
	Platform    Platform `json:"platform,omitempty"`
	TextVersion int      `json:"textVersion,omitempty"`
	Filter      string   `json:"filter,omitempty"`
	Engine      Engine   `json:"ocrEngine,omitempty"`
}

// ScanResult is the complete output of one OCR pass over one image:
// the positioned fragments, the engine's own assembled text when it
// produces one, and the metadata identifying the producer.
type ScanResult struct {
	Fragments  []TextFragment `json:"fragments"`
	NativeText string         `json:"nativeText,omitempty"`
	Metadata   ScanMetadata   `json:"metadata"`
}
