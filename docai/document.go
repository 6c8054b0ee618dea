package docai

import (
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/tsawler/textus/model"
)

// ScansFromDocument converts a processed document into one scan per
// page, in page order. Document AI already normalizes its bounding
// polys to [0,1], so token boxes carry straight over into fragment
// frames.
func ScansFromDocument(doc *documentaipb.Document) []model.ScanResult {
	if doc == nil {
		return nil
	}
	scans := make([]model.ScanResult, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		scans = append(scans, pageScan(page, doc.Text, len(doc.Pages) == 1))
	}
	return scans
}

// ScanFromDocument returns the scan for the document's first page.
// Processing a single image produces exactly one page; use
// ScansFromDocument for multi-page PDF responses.
func ScanFromDocument(doc *documentaipb.Document) model.ScanResult {
	scans := ScansFromDocument(doc)
	if len(scans) == 0 {
		var native string
		if doc != nil {
			native = doc.Text
		}
		return model.ScanResult{NativeText: native, Metadata: metadata()}
	}
	return scans[0]
}

func metadata() model.ScanMetadata {
	return model.ScanMetadata{
		Platform: model.PlatformServer,
		Engine:   model.EngineDocumentAI,
	}
}

// pageScan converts one page into a scan. The page's own text anchor
// selects its slice of the document text; a page without an anchor
// falls back to the whole document text when it is the only page.
func pageScan(page *documentaipb.Document_Page, fullText string, onlyPage bool) model.ScanResult {
	fragments := make([]model.TextFragment, 0, len(page.Tokens))
	for _, token := range page.Tokens {
		if frag, ok := tokenFragment(token, fullText); ok {
			fragments = append(fragments, frag)
		}
	}

	native := textFromLayout(page.Layout, fullText)
	if native == "" && onlyPage {
		native = fullText
	}

	return model.ScanResult{
		Fragments:  fragments,
		NativeText: native,
		Metadata:   metadata(),
	}
}

// tokenFragment converts one token into a fragment. Tokens without a
// layout, without a bounding poly, or anchoring only whitespace are
// dropped. A zero confidence means the processor did not score the
// token, so the fragment carries none.
func tokenFragment(token *documentaipb.Document_Page_Token, fullText string) (model.TextFragment, bool) {
	layout := token.GetLayout()
	if layout == nil {
		return model.TextFragment{}, false
	}

	text := strings.TrimSpace(textFromLayout(layout, fullText))
	if text == "" {
		return model.TextFragment{}, false
	}

	frame, ok := layoutFrame(layout)
	if !ok {
		return model.TextFragment{}, false
	}

	frag := model.TextFragment{Text: text, Frame: frame}
	if c := layout.GetConfidence(); c > 0 {
		frag.Confidence = model.Conf(float64(c))
	}
	return frag, true
}

// layoutFrame reduces a layout's normalized bounding quad to an
// axis-aligned box. Taking the min and max over all vertices keeps
// slightly rotated quads sane.
func layoutFrame(layout *documentaipb.Document_Page_Layout) (model.BBox, bool) {
	poly := layout.GetBoundingPoly()
	if poly == nil || len(poly.NormalizedVertices) == 0 {
		return model.BBox{}, false
	}

	vertices := poly.NormalizedVertices
	minX := float64(vertices[0].GetX())
	minY := float64(vertices[0].GetY())
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		x := float64(v.GetX())
		y := float64(v.GetY())
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return model.NewBBox(minX, minY, maxX-minX, maxY-minY), true
}

// textFromLayout assembles the text a layout's anchor points at.
// Anchor indices are rune offsets into the document text; out-of-range
// segments are clamped rather than rejected.
func textFromLayout(layout *documentaipb.Document_Page_Layout, fullText string) string {
	if layout == nil || layout.TextAnchor == nil {
		return ""
	}

	runes := []rune(fullText)
	var sb strings.Builder
	for _, seg := range layout.TextAnchor.TextSegments {
		start := int(seg.StartIndex)
		end := int(seg.EndIndex)
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start > end {
			start = end
		}
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String()
}
