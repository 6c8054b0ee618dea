// Package imaging decodes image dimensions for coordinate
// normalization. Only image headers are parsed; pixel data is never
// decoded.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	// Decoders registered for DecodeBounds
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeBounds returns the pixel dimensions of an encoded image.
// PNG, JPEG, GIF, TIFF, BMP, and WebP are supported.
func DecodeBounds(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image bounds: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
