// textus is a command-line tool for reconstructing layout-preserving
// plain text from spatially positioned OCR output.
//
// It accepts four kinds of input, detected by content with the file
// extension as fallback:
//
//   - JSON scan dumps produced by capture apps (fragments + metadata)
//   - cached Google Document AI responses (protojson)
//   - hOCR documents from Tesseract-compatible engines
//   - raster images (PNG, JPEG, GIF, TIFF, BMP, WebP), routed to a
//     configured Document AI processor, or to local Tesseract when
//     built with -tags ocr
//
// Configuration:
//
// The optional YAML configuration file carries Document AI processor
// settings and logging preferences:
//
//	documentai:
//	  project_id: "your-gcp-project-id"
//	  location: "us"
//	  processor_id: "your-processor-id"
//	logging:
//	  style: terminal
//	  level: info
//
// Usage:
//
//	textus [options] input
//
// Options:
//
//	-config string          Path to the YAML configuration file
//	-out string             Path to save the reconstructed text (default stdout)
//	-width int              Line width in characters for grid rendering
//	-min-confidence float   Drop fragments below this confidence (0-1)
//	-mode string            Reconstruction mode: auto, clustered, paragraphs
//	-spacing string         Spacing strategy: auto, grid, proportional
//	-policy string          Registered row clustering policy name
//	-row-grouping float     Row grouping factor override
//	-lang string            Tesseract languages for image input (comma separated)
//	-scan-out string        Path to save the ingested scan as a JSON dump
//
// Example:
//
//	textus -width 64 receipt.json
//	textus -config docai.yml -out receipt.txt receipt.png
//	textus -mode clustered -spacing proportional page.hocr
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/textus"
	"github.com/tsawler/textus/docai"
	"github.com/tsawler/textus/format"
	"github.com/tsawler/textus/hocr"
	"github.com/tsawler/textus/logging"
	"github.com/tsawler/textus/model"
	"github.com/tsawler/textus/ocr"
	"github.com/tsawler/textus/scanio"
)

type appConfig struct {
	DocumentAI docai.Config   `yaml:"documentai"`
	Logging    logging.Config `yaml:"logging"`
}

// loadConfig reads the YAML configuration file. A missing path yields
// the zero config, which disables Document AI and logs to the terminal.
func loadConfig(path string) (*appConfig, error) {
	var cfg appConfig
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file")
	outPath := flag.String("out", "", "Path to save the reconstructed text (default stdout)")
	width := flag.Int("width", 0, "Line width in characters for grid rendering")
	minConfidence := flag.Float64("min-confidence", -1, "Drop fragments below this confidence (0-1)")
	mode := flag.String("mode", "auto", "Reconstruction mode: auto, clustered, paragraphs")
	spacing := flag.String("spacing", "auto", "Spacing strategy: auto, grid, proportional")
	policy := flag.String("policy", "", "Registered row clustering policy name")
	rowGrouping := flag.Float64("row-grouping", 0, "Row grouping factor override")
	lang := flag.String("lang", "", "Tesseract languages for image input (comma separated)")
	scanOutPath := flag.String("scan-out", "", "Path to save the ingested scan as a JSON dump")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file is required")
		fmt.Fprintln(os.Stderr, "Usage: textus [options] input")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewLogger(&cfg.Logging)
	defer logger.Sync()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	scan, err := ingest(inputPath, data, cfg, *lang, logger)
	if err != nil {
		log.Fatalf("Failed to ingest %s: %v", inputPath, err)
	}

	if *scanOutPath != "" {
		dump, err := scanio.Encode(scan)
		if err != nil {
			log.Fatalf("Failed to encode scan dump: %v", err)
		}
		if err := os.WriteFile(*scanOutPath, dump, 0644); err != nil {
			log.Fatalf("Failed to write scan dump: %v", err)
		}
		logger.Info("scan dump saved", zap.String("path", *scanOutPath))
	}

	r := textus.FromScan(scan).WithLogger(logger)

	if *width > 0 {
		r = r.LineWidth(*width)
	}
	if *minConfidence >= 0 {
		r = r.MinConfidence(*minConfidence)
	}
	if *rowGrouping > 0 {
		r = r.RowGroupingFactor(*rowGrouping)
	}
	if *policy != "" {
		r = r.Policy(*policy)
	}

	switch *mode {
	case "auto":
	case "clustered":
		r = r.Clustered()
	case "paragraphs":
		r = r.Paragraphs()
	default:
		log.Fatalf("Unknown mode %q: must be auto, clustered, or paragraphs", *mode)
	}

	switch *spacing {
	case "auto":
	case "grid":
		r = r.GridSpacing()
	case "proportional":
		r = r.ProportionalSpacing()
	default:
		log.Fatalf("Unknown spacing %q: must be auto, grid, or proportional", *spacing)
	}

	text, warnings, err := r.Text()
	if err != nil {
		log.Fatalf("Reconstruction failed: %v", err)
	}
	if len(warnings) > 0 {
		logger.Warn("scan quality", zap.String("warnings", textus.FormatWarnings(warnings)))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(text+"\n"), 0644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		logger.Info("reconstructed text saved", zap.String("path", *outPath))
	} else {
		fmt.Println(text)
	}
}

// ingest converts the input file into a scan, routing on the detected
// format. Images go to Document AI when a processor is configured and
// to local Tesseract otherwise.
func ingest(path string, data []byte, cfg *appConfig, lang string, logger *zap.Logger) (model.ScanResult, error) {
	f := format.DetectInput(path, data)
	logger.Debug("input detected", zap.String("format", f.String()))

	switch {
	case f == format.ScanJSON:
		return scanio.Decode(data)

	case f == format.DocumentJSON:
		doc, err := docai.UnmarshalDocument(data)
		if err != nil {
			return model.ScanResult{}, err
		}
		return docai.ScanFromDocument(doc), nil

	case f == format.HOCR:
		return hocr.ParseScan(data)

	case f.IsImage():
		if cfg.DocumentAI.ProcessorID != "" {
			return scanWithDocumentAI(data, f, cfg.DocumentAI, logger)
		}
		return scanWithTesseract(data, lang, logger)

	default:
		return model.ScanResult{}, fmt.Errorf("unrecognized input format")
	}
}

func scanWithDocumentAI(data []byte, f format.Format, cfg docai.Config, logger *zap.Logger) (model.ScanResult, error) {
	logger.Debug("processing image with Document AI",
		zap.String("processor", cfg.ProcessorID),
		zap.String("mimeType", f.MimeType()))

	ctx := context.Background()
	client, err := docai.New(ctx, cfg)
	if err != nil {
		return model.ScanResult{}, err
	}
	defer client.Close()

	return client.Scan(ctx, data, f.MimeType())
}

func scanWithTesseract(data []byte, lang string, logger *zap.Logger) (model.ScanResult, error) {
	logger.Debug("processing image with Tesseract", zap.String("lang", lang))

	client, err := ocr.New()
	if err != nil {
		return model.ScanResult{}, err
	}
	defer client.Close()

	if lang != "" {
		if err := client.SetLanguage(strings.Split(lang, ",")...); err != nil {
			return model.ScanResult{}, err
		}
	}
	return client.Scan(data)
}
