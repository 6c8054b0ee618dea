// Package logging provides configurable zap logger creation for the
// textus command line tool and examples.
package logging

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the log output encoding.
type Style string

const (
	// StyleTerminal is the human-readable development encoding.
	StyleTerminal Style = "terminal"
	// StyleJSON is the machine-readable production encoding.
	StyleJSON Style = "json"
	// StyleNoop discards all output.
	StyleNoop Style = "noop"
)

// Config controls logger construction.
type Config struct {
	Style Style  `yaml:"style"`
	Level string `yaml:"level"`
}

// NewLogger creates a zap logger based on the config settings. If the
// config is nil or has empty values, defaults to terminal style with
// info level.
func NewLogger(c *Config) *zap.Logger {
	style := StyleTerminal
	level := zapcore.InfoLevel

	if c != nil {
		if c.Style != "" {
			style = c.Style
		}
		if c.Level != "" {
			if lvl, err := zapcore.ParseLevel(c.Level); err == nil {
				level = lvl
			}
		}
	}

	var logger *zap.Logger
	var err error

	switch style {
	case StyleNoop:
		logger = zap.NewNop()
	case StyleJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = cfg.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	case StyleTerminal:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = cfg.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	default:
		log.Fatalf(
			"invalid logging style '%s': must be one of: terminal, json, noop",
			style,
		)
	}

	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	return logger
}
