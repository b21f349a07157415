// Package config defines the CLI defaults for linepos and their YAML
// file representation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = ".linepos.yaml"

// OutputFormat specifies the output format for query results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Sentinel errors for configuration problems.
var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidColor  = errors.New("invalid color mode")
)

// Config holds the CLI defaults. All fields can be overridden by flags.
type Config struct {
	// Color selects colorized output: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// Format selects the output format: text or json.
	Format OutputFormat `yaml:"format"`

	// Context toggles printing the source line under each result.
	Context bool `yaml:"context"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Color:   ColorAuto,
		Format:  FormatText,
		Context: true,
	}
}

// Load reads a config file from path. An empty path tries
// DefaultFileName in the working directory; if no file exists there,
// the built-in defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return FromYAML(data)
}

// FromYAML parses a configuration from YAML bytes. Absent fields keep
// their defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}

	return nil
}
