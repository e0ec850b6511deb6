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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TALENTLINK_CONFIG is set
//  3. env (prefix TALENTLINK_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TALENTLINK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TALENTLINK_BASE_URL, TALENTLINK_TIMEOUT_MS, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("TALENTLINK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "talentlink_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.TimeoutMS <= 0 {
		return nil, fmt.Errorf("%w: timeout_ms must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
