package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/linepos/pkg/config"
)

// Sentinel errors for CLI failures.
var (
	// ErrInvalidArgument reports malformed positional arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfigLoad reports a configuration file that could not be read
	// or parsed.
	ErrConfigLoad = errors.New("config load failed")
)

// loadConfig resolves the effective configuration: file values first,
// then flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	if opts.color != "" {
		cfg.Color = config.ColorMode(opts.color)
	}
	if opts.format != "" {
		cfg.Format = config.OutputFormat(opts.format)
	}
	if opts.noContext {
		cfg.Context = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
