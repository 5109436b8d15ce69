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

	// Pipeline config
	assert.Equal(t, 255, cfg.Pipeline.LineCap)
	assert.Equal(t, "end_header", cfg.Pipeline.Marker)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Console config
	assert.True(t, cfg.Console.Color)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"LINE_CAP":      "512",
		"HEADER_MARKER": "### end ###",
		"LOG_LEVEL":     "debug",
		"LOG_DEV":       "true",
		"CONSOLE_COLOR": "false",
	}

	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Pipeline.LineCap)
	assert.Equal(t, "### end ###", cfg.Pipeline.Marker)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.Console.Color)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("LINE_CAP", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden value
	assert.Equal(t, 1024, cfg.Pipeline.LineCap)

	// Verify default values still apply
	assert.Equal(t, "end_header", cfg.Pipeline.Marker)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "superreader.toml")

	content := `
[pipeline]
line_cap = 128
marker = "--- body ---"

[logging]
level = "warn"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Pipeline.LineCap)
	assert.Equal(t, "--- body ---", cfg.Pipeline.Marker)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Sections absent from the file keep defaults
	assert.True(t, cfg.Console.Color)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"line cap too small", func(c *Config) { c.Pipeline.LineCap = 8 }, true},
		{"line cap too large", func(c *Config) { c.Pipeline.LineCap = 1 << 20 }, true},
		{"line cap at lower bound", func(c *Config) { c.Pipeline.LineCap = MinLineCap }, false},
		{"line cap at upper bound", func(c *Config) { c.Pipeline.LineCap = MaxLineCap }, false},
		{"empty marker", func(c *Config) { c.Pipeline.Marker = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
