// Package logging builds the zap logger used by tabledemo.
// Logs go to stderr so stdout carries only the program's output.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tabledemo/internal/config"
)

// Category names a subsystem; it becomes the logger name.
type Category string

const (
	CategoryBoot   Category = "boot"   // CLI startup and configuration
	CategoryRunner Category = "runner" // Table demo run
)

// ParseLevel maps a logging.level string to a zap level.
// Unknown values fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewConfig returns the zap configuration for cfg. verbose forces debug.
func NewConfig(cfg config.LoggingConfig, verbose bool) zap.Config {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if strings.ToLower(cfg.Format) == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg
}

// New builds a logger for cfg.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	logger, err := NewConfig(cfg, verbose).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns a child logger named after the category. A nil logger
// yields a no-op logger.
func For(logger *zap.Logger, cat Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(cat))
}
