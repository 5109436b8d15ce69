package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/romware/superreader/internal/pipeline"
)

// Record size limits, mirrored from the pipeline so a config that
// validates here is always accepted by the pipeline constructor.
const (
	MinLineCap = pipeline.MinLineCap
	MaxLineCap = pipeline.MaxLineCap
)

// Config holds all application configuration.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Logging  LogConfig      `toml:"logging"`
	Console  ConsoleConfig  `toml:"console"`
}

// PipelineConfig holds the transfer settings.
type PipelineConfig struct {
	// LineCap is the maximum record size in bytes, terminator included.
	// Longer source lines are split into unmarked continuation records.
	LineCap int `envconfig:"LINE_CAP" default:"255" toml:"line_cap"`
	// Marker ends the header block. Matched by substring containment.
	Marker string `envconfig:"HEADER_MARKER" default:"end_header" toml:"marker"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" toml:"development"`
}

// ConsoleConfig holds the interactive console settings.
type ConsoleConfig struct {
	Color bool `envconfig:"CONSOLE_COLOR" default:"true" toml:"color"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadFile loads configuration from a TOML file on top of defaults.
// File values win over environment variables when a file is used.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			LineCap: 255,
			Marker:  "end_header",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Console: ConsoleConfig{
			Color: true,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Pipeline.LineCap < MinLineCap || c.Pipeline.LineCap > MaxLineCap {
		return fmt.Errorf("line cap %d out of range [%d, %d]", c.Pipeline.LineCap, MinLineCap, MaxLineCap)
	}
	if c.Pipeline.Marker == "" {
		return fmt.Errorf("header marker must not be empty")
	}
	return nil
}
