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
//  2. file (YAML) if BIRDIE_CONFIG is set
//  3. env (prefix BIRDIE_)
//
// CLI flags are layered on top by the cmd package.
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("BIRDIE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: BIRDIE_LANG, BIRDIE_SCORE_BAR_WIDTH, ...
	// Map env keys like BIRDIE_SCORE_BAR_WIDTH -> score_bar_width.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("BIRDIE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "birdie_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the engine cannot run with. Widths get
// their fine-grained checks (odd bump, name margin) in the render layer;
// this stops only the plainly unusable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url must not be empty", ErrInvalidConfig)
	}
	if c.Lang == "" {
		return fmt.Errorf("%w: lang must not be empty", ErrInvalidConfig)
	}
	if c.Scoring != "bytes" && c.Scoring != "chars" {
		return fmt.Errorf("%w: scoring must be bytes or chars, got %q", ErrInvalidConfig, c.Scoring)
	}
	if c.GoldScope != "lang" && c.GoldScope != "golfers" {
		return fmt.Errorf("%w: gold_scope must be lang or golfers, got %q", ErrInvalidConfig, c.GoldScope)
	}
	if c.ScoreBarWidth <= 0 {
		return fmt.Errorf("%w: score_bar_width must be positive", ErrInvalidConfig)
	}
	if c.HoleNameWidth <= 0 {
		return fmt.Errorf("%w: hole_name_width must be positive", ErrInvalidConfig)
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("%w: timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.Retries <= 0 {
		return fmt.Errorf("%w: retries must be positive", ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	}
	return nil
}
