// Package hocr ingests hOCR documents, the HTML microformat Tesseract
// and compatible engines emit for positioned recognition output. Word
// boxes arrive in page pixel coordinates; the parser normalizes them
// against their page box so downstream layout code receives the same
// [0,1] frames every other scan source produces.
package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/textus/model"
)

// word is one ocrx_word element lifted out of the HTML tree, still in
// page pixel coordinates.
type word struct {
	text string
	box  Box
	conf *float64
}

// Parse reads an hOCR document from r and returns the scan for its
// first page. Single-image OCR runs produce exactly one page.
func Parse(r io.Reader) (model.ScanResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("failed to read hOCR data: %w", err)
	}
	return ParseScan(data)
}

// ParseScan parses hOCR data and returns the scan for its first page.
func ParseScan(data []byte) (model.ScanResult, error) {
	scans, err := ParsePages(data)
	if err != nil {
		return model.ScanResult{}, err
	}
	return scans[0], nil
}

// ParsePages parses hOCR data and returns one scan per ocr_page
// element, in document order. It fails when the document contains no
// pages at all, which usually means the input was not hOCR.
func ParsePages(data []byte) ([]model.ScanResult, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR markup: %w", err)
	}

	var scans []model.ScanResult
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			scans = append(scans, pageScan(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(scans) == 0 {
		return nil, fmt.Errorf("no ocr_page elements found")
	}
	return scans, nil
}

// decodeCharset returns the document bytes as UTF-8. Older Tesseract
// builds declare Latin-1 in a meta tag; anything that is not already
// UTF-8 goes through the ISO 8859-1 decoder.
func decodeCharset(data []byte) ([]byte, error) {
	cs := sniffCharset(string(data))
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return data, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", cs, err)
	}
	return decoded, nil
}

// sniffCharset pulls the charset value out of a meta tag, if any. The
// markup has not been parsed yet at this point, so it scans the raw
// text for the first charset= occurrence.
func sniffCharset(content string) string {
	i := strings.Index(content, "charset=")
	if i < 0 {
		return ""
	}
	rest := content[i+len("charset="):]
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '"' || r == '\'' || r == ';' || r == '>' || r == ' ' || r == '/'
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// pageScan converts one ocr_page element into a scan: every ocrx_word
// beneath it becomes a fragment normalized by the page box.
func pageScan(n *html.Node) model.ScanResult {
	words := collectWords(n)

	pageBox, ok := TitleBox(attrVal(n, "title"))
	if !ok || pageBox.Empty() {
		pageBox = wordExtent(words)
	}

	fragments := make([]model.TextFragment, 0, len(words))
	for _, w := range words {
		if w.text == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			Text:       w.text,
			Frame:      normalize(w.box, pageBox),
			Confidence: w.conf,
		})
	}

	return model.ScanResult{
		Fragments: fragments,
		Metadata: model.ScanMetadata{
			Platform: model.PlatformServer,
			Engine:   model.EngineTesseract,
		},
	}
}

// collectWords gathers every ocrx_word element beneath the page node,
// in document order. Intermediate structure (areas, paragraphs, lines)
// is walked through but not retained; row grouping is recomputed from
// geometry downstream.
func collectWords(page *html.Node) []word {
	var words []word
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			words = append(words, parseWord(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := page.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return words
}

// parseWord extracts text, box and confidence from one ocrx_word
// element. The x_wconf property is a percentage; it maps to [0,1].
func parseWord(n *html.Node) word {
	w := word{text: strings.TrimSpace(textContent(n))}

	title := attrVal(n, "title")
	if box, ok := TitleBox(title); ok {
		w.box = box
	}
	props := ParseTitle(title)
	if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
		if v, err := strconv.ParseFloat(conf[0], 64); err == nil {
			w.conf = model.Conf(v / 100.0)
		}
	}
	return w
}

// normalize maps a word box from page pixels into the [0,1] frame.
func normalize(b Box, page Box) model.BBox {
	pw := page.Width()
	ph := page.Height()
	if pw <= 0 || ph <= 0 {
		return model.BBox{}
	}
	return model.NewBBox(
		(b.X1-page.X1)/pw,
		(b.Y1-page.Y1)/ph,
		b.Width()/pw,
		b.Height()/ph,
	)
}

// wordExtent derives a page box from the words themselves, anchored at
// the origin. Fallback for pages whose title carries no usable bbox.
func wordExtent(words []word) Box {
	var extent Box
	for _, w := range words {
		if w.box.X2 > extent.X2 {
			extent.X2 = w.box.X2
		}
		if w.box.Y2 > extent.Y2 {
			extent.Y2 = w.box.Y2
		}
	}
	return extent
}

// textContent concatenates all text beneath a node. Word elements
// occasionally wrap their text in strong or em tags.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// hasClass reports whether the node's class attribute contains the
// given class as a whole word.
func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attrVal(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
