// Package docai adapts Google Document AI output to the scan model.
// The processor performs its own layout analysis and returns assembled
// text alongside positioned tokens, so scans from this package carry
// both: the native text for direct use and the token fragments for
// reconstruction when the native text is unusable.
package docai

import (
	"context"
	"fmt"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"github.com/tsawler/textus/model"
)

// Config holds the processor coordinates and optional credentials. An
// empty CredentialsFile falls back to application default credentials.
type Config struct {
	ProjectID       string `yaml:"project_id"`
	Location        string `yaml:"location"`
	ProcessorID     string `yaml:"processor_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

func (c Config) endpoint() string {
	return fmt.Sprintf("%s-documentai.googleapis.com:443", c.Location)
}

func (c Config) processorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s",
		c.ProjectID, c.Location, c.ProcessorID)
}

// Client wraps a Document AI processor client.
type Client struct {
	client *documentai.DocumentProcessorClient
	cfg    Config
}

// New connects to the regional Document AI endpoint for the configured
// processor.
func New(ctx context.Context, cfg Config) (*Client, error) {
	opts := []option.ClientOption{option.WithEndpoint(cfg.endpoint())}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	return &Client{client: client, cfg: cfg}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// ProcessImage sends raw image bytes through the processor and returns
// the Document proto from the response.
func (c *Client) ProcessImage(ctx context.Context, data []byte, mimeType string) (*documentaipb.Document, error) {
	req := &documentaipb.ProcessRequest{
		Name: c.cfg.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  data,
				MimeType: mimeType,
			},
		},
		SkipHumanReview: true,
	}

	resp, err := c.client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to process document: %w", err)
	}
	return resp.Document, nil
}

// Scan processes image bytes and converts the response into a scan.
func (c *Client) Scan(ctx context.Context, data []byte, mimeType string) (model.ScanResult, error) {
	doc, err := c.ProcessImage(ctx, data, mimeType)
	if err != nil {
		return model.ScanResult{}, err
	}
	return ScanFromDocument(doc), nil
}
