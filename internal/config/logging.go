package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"json", "console"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Validate reports an unknown level or format.
func (c *LoggingConfig) Validate() error {
	if !slices.Contains(ValidLogLevels, strings.ToLower(c.Level)) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, strings.ToLower(c.Format)) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Format, ValidLogFormats)
	}
	return nil
}
