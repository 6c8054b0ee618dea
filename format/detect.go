// Package format provides input format detection for the textus library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// ScanJSON indicates a JSON scan dump.
	ScanJSON
	// DocumentJSON indicates a cached Document AI response.
	DocumentJSON
	// HOCR indicates an hOCR document.
	HOCR
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a BMP image.
	BMP
	// WebP indicates a WebP image.
	WebP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case ScanJSON:
		return "ScanJSON"
	case DocumentJSON:
		return "DocumentJSON"
	case HOCR:
		return "hOCR"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case ScanJSON, DocumentJSON:
		return ".json"
	case HOCR:
		return ".hocr"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	case WebP:
		return ".webp"
	default:
		return ""
	}
}

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	switch f {
	case ScanJSON, DocumentJSON:
		return "application/json"
	case HOCR:
		return "text/html"
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case TIFF:
		return "image/tiff"
	case BMP:
		return "image/bmp"
	case WebP:
		return "image/webp"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, BMP, WebP:
		return true
	default:
		return false
	}
}

// Detect determines input format from filename extension. A .json
// extension maps to ScanJSON; use DetectFromMagic to tell scan dumps
// and cached Document AI responses apart.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return ScanJSON
	case ".hocr", ".html", ".htm":
		return HOCR
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".webp":
		return WebP
	default:
		return Unknown
	}
}

// DetectFromMagic checks content bytes to determine format. This
// provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from the content.
func DetectFromMagic(data []byte) Format {
	if len(data) < 2 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF8")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WebP
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return detectJSONFlavor(trimmed)
	}
	if detectMarkupMagic(trimmed) {
		return HOCR
	}

	return Unknown
}

// detectJSONFlavor tells scan dumps and cached Document AI responses
// apart by their leading keys. Scan dumps always carry a fragments
// array; Document AI JSON carries text and pages.
func detectJSONFlavor(data []byte) Format {
	window := data
	if len(window) > 512 {
		window = window[:512]
	}

	if bytes.Contains(window, []byte(`"fragments"`)) {
		return ScanJSON
	}
	if bytes.Contains(window, []byte(`"pages"`)) || bytes.Contains(window, []byte(`"text"`)) {
		return DocumentJSON
	}
	return ScanJSON
}

// detectMarkupMagic checks if the data looks like an HTML document.
// HTML input in this domain is hOCR output; the parser rejects
// anything without ocr_page elements later.
func detectMarkupMagic(data []byte) bool {
	window := data
	if len(window) > 512 {
		window = window[:512]
	}

	upper := strings.ToUpper(string(window))
	return strings.HasPrefix(upper, "<!DOCTYPE") ||
		strings.HasPrefix(upper, "<HTML") ||
		strings.HasPrefix(upper, "<?XML") ||
		strings.HasPrefix(upper, "<DIV")
}

// DetectInput combines both detectors: content sniffing wins, the
// filename extension decides when the content is inconclusive.
func DetectInput(filename string, data []byte) Format {
	if f := DetectFromMagic(data); f != Unknown {
		return f
	}
	return Detect(filename)
}
