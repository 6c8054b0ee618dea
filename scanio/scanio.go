// Package scanio reads and writes scan dumps, the JSON form capture
// apps use to hand their OCR output to this library. The dump is a
// direct serialization of model.ScanResult.
package scanio

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/decoder"
	"github.com/bytedance/sonic/encoder"

	"github.com/tsawler/textus/model"
)

// Decode parses a scan dump.
func Decode(data []byte) (model.ScanResult, error) {
	var scan model.ScanResult
	if err := sonic.Unmarshal(data, &scan); err != nil {
		return model.ScanResult{}, fmt.Errorf("failed to parse scan JSON: %w", err)
	}
	return scan, nil
}

// Encode serializes a scan as a dump.
func Encode(scan model.ScanResult) ([]byte, error) {
	data, err := sonic.Marshal(scan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scan: %w", err)
	}
	return data, nil
}

// Read decodes a scan dump from r.
func Read(r io.Reader) (model.ScanResult, error) {
	var scan model.ScanResult
	if err := decoder.NewStreamDecoder(r).Decode(&scan); err != nil {
		return model.ScanResult{}, fmt.Errorf("failed to parse scan JSON: %w", err)
	}
	return scan, nil
}

// Write encodes a scan dump to w.
func Write(w io.Writer, scan model.ScanResult) error {
	if err := encoder.NewStreamEncoder(w).Encode(scan); err != nil {
		return fmt.Errorf("failed to encode scan: %w", err)
	}
	return nil
}
