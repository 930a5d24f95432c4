package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Window)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "\f", cfg.PageSeparator)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("no path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "docdiff.yaml")
		data := "window: 6\nformat: html\nreference: true\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Window)
		assert.Equal(t, FormatHTML, cfg.Format)
		assert.True(t, cfg.Reference)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "\f", cfg.PageSeparator)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("window: [1"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DOCDIFF_WINDOW", "9")
		t.Setenv("DOCDIFF_LOG_LEVEL", "error")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Window)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("bad environment window", func(t *testing.T) {
		t.Setenv("DOCDIFF_WINDOW", "wide")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"negative window": func(c *Config) { c.Window = -1 },
		"unknown format":  func(c *Config) { c.Format = "pdf" },
		"empty separator": func(c *Config) { c.PageSeparator = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
