package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tabledemo/internal/env"
	"tabledemo/internal/render"
)

// Defaults for the printed configuration value.
const (
	DefaultSecretEnvVar = "SECRET"
	DefaultSecretValue  = "No secrets set in environment variables!"
)

// Environment variables that override file settings.
const (
	EnvTableStyle = "TABLEDEMO_TABLE_STYLE"
	EnvLogLevel   = "TABLEDEMO_LOG_LEVEL"
)

// Config holds all tabledemo configuration.
type Config struct {
	Secret  SecretConfig  `yaml:"secret"`
	Table   TableConfig   `yaml:"table"`
	Logging LoggingConfig `yaml:"logging"`
}

// SecretConfig names the environment variable holding the printed value
// and the message printed when it is unset.
type SecretConfig struct {
	EnvVar  string `yaml:"env_var"`
	Default string `yaml:"default"`
}

// TableConfig configures table rendering.
type TableConfig struct {
	Style string `yaml:"style"` // plain, border
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Secret: SecretConfig{
			EnvVar:  DefaultSecretEnvVar,
			Default: DefaultSecretValue,
		},
		Table: TableConfig{
			Style: string(render.StylePlain),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file and applies environment
// overrides read through r. An empty path or a missing file yields the
// defaults.
func Load(path string, r env.Reader) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides(r)

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides(r env.Reader) {
	if style, ok := env.Lookup(r, EnvTableStyle); ok {
		c.Table.Style = style
	}
	if level, ok := env.Lookup(r, EnvLogLevel); ok {
		c.Logging.Level = level
	}
}

// TableStyle returns the parsed table style.
func (c *Config) TableStyle() (render.Style, error) {
	return render.ParseStyle(c.Table.Style)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Secret.EnvVar == "" {
		return fmt.Errorf("secret.env_var must not be empty")
	}
	if _, err := c.TableStyle(); err != nil {
		return fmt.Errorf("invalid table.style: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}
