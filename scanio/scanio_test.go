package scanio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsawler/textus/model"
)

func TestDecode_CaptureAppDump(t *testing.T) {
	dump := `{
		"fragments": [
			{"text": "Milk", "frame": {"x": 0.05, "y": 0.10, "width": 0.15, "height": 0.04}, "confidence": 0.97},
			{"text": "$3.99", "frame": {"x": 0.75, "y": 0.10, "width": 0.18, "height": 0.04}}
		],
		"metadata": {"platform": "ios", "ocrEngine": "vision", "textVersion": 2}
	}`

	scan, err := Decode([]byte(dump))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(scan.Fragments) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(scan.Fragments))
	}
	milk := scan.Fragments[0]
	if milk.Text != "Milk" || milk.Frame.X != 0.05 || milk.Frame.Height != 0.04 {
		t.Errorf("Expected Milk fragment at (0.05, 0.10), got %+v", milk)
	}
	if milk.Confidence == nil || *milk.Confidence != 0.97 {
		t.Errorf("Expected confidence 0.97, got %v", milk.Confidence)
	}
	if scan.Fragments[1].Confidence != nil {
		t.Errorf("Expected nil confidence when the key is absent, got %v", *scan.Fragments[1].Confidence)
	}

	if scan.Metadata.Platform != model.PlatformIOS {
		t.Errorf("Expected ios platform, got %q", scan.Metadata.Platform)
	}
	if scan.Metadata.Engine != model.EngineVision || scan.Metadata.TextVersion != 2 {
		t.Errorf("Expected vision v2 metadata, got %+v", scan.Metadata)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	scan := model.ScanResult{
		Fragments: []model.TextFragment{
			{
				Text:       "Total",
				Frame:      model.NewBBox(0.05, 0.20, 0.18, 0.04),
				Confidence: model.Conf(0.88),
			},
		},
		NativeText: "Total  8.49",
		Metadata: model.ScanMetadata{
			Platform: model.PlatformServer,
			Engine:   model.EngineDocumentAI,
		},
	}

	data, err := Encode(scan)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	restored, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if restored.NativeText != scan.NativeText {
		t.Errorf("Expected native text %q, got %q", scan.NativeText, restored.NativeText)
	}
	if len(restored.Fragments) != 1 || restored.Fragments[0].Text != "Total" {
		t.Fatalf("Expected the Total fragment back, got %+v", restored.Fragments)
	}
	if restored.Fragments[0].Frame != scan.Fragments[0].Frame {
		t.Errorf("Expected frame %+v, got %+v", scan.Fragments[0].Frame, restored.Fragments[0].Frame)
	}
	if restored.Fragments[0].Confidence == nil || *restored.Fragments[0].Confidence != 0.88 {
		t.Errorf("Expected confidence 0.88, got %v", restored.Fragments[0].Confidence)
	}
	if restored.Metadata.Engine != model.EngineDocumentAI {
		t.Errorf("Expected documentai engine, got %q", restored.Metadata.Engine)
	}
}

func TestReadWrite_Streams(t *testing.T) {
	scan := model.ScanResult{
		Fragments: []model.TextFragment{
			{Text: "row", Frame: model.NewBBox(0.1, 0.1, 0.3, 0.05)},
		},
		Metadata: model.ScanMetadata{Engine: model.EngineMLKit},
	}

	var buf bytes.Buffer
	if err := Write(&buf, scan); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	restored, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(restored.Fragments) != 1 || restored.Fragments[0].Text != "row" {
		t.Errorf("Expected the row fragment back, got %+v", restored.Fragments)
	}
	if restored.Metadata.Engine != model.EngineMLKit {
		t.Errorf("Expected mlkit engine, got %q", restored.Metadata.Engine)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte("not json at all")); err == nil {
		t.Fatal("Expected an error for invalid JSON")
	}
	if _, err := Read(strings.NewReader("{broken")); err == nil {
		t.Fatal("Expected an error for truncated JSON")
	}
}

func TestEncode_OmitsEmptyOptionals(t *testing.T) {
	data, err := Encode(model.ScanResult{
		Fragments: []model.TextFragment{
			{Text: "word", Frame: model.NewBBox(0, 0, 0.1, 0.05)},
		},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := string(data)
	if strings.Contains(out, "nativeText") {
		t.Errorf("Expected nativeText to be omitted when empty, got %s", out)
	}
	if strings.Contains(out, "confidence") {
		t.Errorf("Expected confidence to be omitted when absent, got %s", out)
	}
}
