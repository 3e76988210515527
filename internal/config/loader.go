package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "OLYMPICS_"
	envCfgFile = "OLYMPICS_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. YAML file if OLYMPICS_CONFIG is set
//  3. env (prefix OLYMPICS_)
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envCfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// OLYMPICS_TOP_K -> top_k; underscores are kept to match the flat koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.AthletesPath) == "":
		return fmt.Errorf("%w: athletes_path must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.RegionsPath) == "":
		return fmt.Errorf("%w: regions_path must not be empty", ErrInvalidConfig)
	case c.TopK < 1:
		return fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidConfig, c.TopK)
	case c.HallOfFameSize < 1:
		return fmt.Errorf("%w: hall_of_fame_size must be positive, got %d", ErrInvalidConfig, c.HallOfFameSize)
	case c.MinEditionYear < 1896:
		return fmt.Errorf("%w: min_edition_year must be 1896 or later, got %d", ErrInvalidConfig, c.MinEditionYear)
	}
	return nil
}
