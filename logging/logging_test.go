package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger := NewLogger(nil)
	if logger == nil {
		t.Fatal("Expected a logger from a nil config")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info level to be enabled by default")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be disabled by default")
	}
}

func TestNewLogger_Noop(t *testing.T) {
	logger := NewLogger(&Config{Style: StyleNoop})
	if logger == nil {
		t.Fatal("Expected a logger")
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected the noop logger to discard everything")
	}
	// Logging through it must not panic.
	logger.Info("discarded")
}

func TestNewLogger_Level(t *testing.T) {
	logger := NewLogger(&Config{Style: StyleJSON, Level: "debug"})
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be enabled")
	}

	logger = NewLogger(&Config{Style: StyleJSON, Level: "warn"})
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info level to be disabled at warn")
	}
}

func TestNewLogger_BadLevelFallsBack(t *testing.T) {
	logger := NewLogger(&Config{Style: StyleNoop, Level: "nonsense"})
	if logger == nil {
		t.Fatal("Expected a logger despite the unparseable level")
	}
}
