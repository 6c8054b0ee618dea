//go:build ocr

// Package ocr recognizes text in scanned images and produces
// positioned fragments for reconstruction.
//
// This package wraps the Tesseract OCR engine via gosseract. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/textus/internal/imaging"
	"github.com/tsawler/textus/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition, e.g. "eng", "fra".
// Default is "eng" (English).
func (c *Client) SetLanguage(langs ...string) error {
	return c.client.SetLanguage(langs...)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// RecognizeText performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Scan performs OCR on image data and returns a scan result with one
// fragment per recognized word. Frames are normalized to the [0,1]
// space of the source image and word confidences to [0,1], ready for
// reconstruction.
func (c *Client) Scan(imageData []byte) (model.ScanResult, error) {
	width, height, err := imaging.DecodeBounds(imageData)
	if err != nil {
		return model.ScanResult{}, err
	}
	if width == 0 || height == 0 {
		return model.ScanResult{}, fmt.Errorf("image has no area")
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return model.ScanResult{}, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("failed to read word boxes: %w", err)
	}

	w := float64(width)
	h := float64(height)
	fragments := make([]model.TextFragment, 0, len(boxes))
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			Text: word,
			Frame: model.NewBBox(
				float64(b.Box.Min.X)/w,
				float64(b.Box.Min.Y)/h,
				float64(b.Box.Dx())/w,
				float64(b.Box.Dy())/h,
			),
			Confidence: model.Conf(b.Confidence / 100.0),
		})
	}

	return model.ScanResult{
		Fragments:  fragments,
		NativeText: strings.TrimSpace(text),
		Metadata: model.ScanMetadata{
			Platform: model.PlatformServer,
			Engine:   model.EngineTesseract,
		},
	}, nil
}
