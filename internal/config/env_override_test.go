package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabledemo/internal/env"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("TABLEDEMO_TABLE_STYLE sets style", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides(env.MapReader{EnvTableStyle: "border"})

		assert.Equal(t, "border", cfg.Table.Style)
	})

	t.Run("TABLEDEMO_LOG_LEVEL sets level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides(env.MapReader{EnvLogLevel: "debug"})

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides(env.MapReader{EnvTableStyle: "", EnvLogLevel: ""})

		assert.Equal(t, "plain", cfg.Table.Style)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("nil reader leaves config untouched", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides(nil)

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("SECRET is not a config override", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides(env.MapReader{"SECRET": "hunter2"})

		assert.Equal(t, DefaultSecretValue, cfg.Secret.Default)
	})
}

func TestEnvOverrides_BeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabledemo.yaml")
	data := "table:\n  style: plain\nlogging:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path, env.MapReader{EnvTableStyle: "border"})
	require.NoError(t, err)

	assert.Equal(t, "border", cfg.Table.Style)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverrides_OSReader(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load("", env.OSReader{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}
