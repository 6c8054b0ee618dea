package docai

import (
	"fmt"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
)

// MarshalDocument serializes a Document proto to JSON. Processor calls
// are slow and billed, so responses are typically cached next to their
// source images and replayed through UnmarshalDocument.
func MarshalDocument(doc *documentaipb.Document) ([]byte, error) {
	data, err := protojson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// UnmarshalDocument restores a Document proto serialized by
// MarshalDocument.
func UnmarshalDocument(data []byte) (*documentaipb.Document, error) {
	var doc documentaipb.Document
	if err := protojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document JSON: %w", err)
	}
	return &doc, nil
}
