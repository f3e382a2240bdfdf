// Package config defines CLI configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Layer defaults, optional YAML file, and env vars in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Golfer names are positional CLI
// arguments and deliberately not configurable here.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL points at the code.golf API.
	BaseURL string `koanf:"base_url"`

	// Lang filters submissions to one language.
	Lang string `koanf:"lang"`

	// Cutoff is the as-of boundary string; empty means no filtering.
	Cutoff string `koanf:"cutoff"`

	// Scoring selects the length metric: bytes or chars.
	Scoring string `koanf:"scoring"`

	// GoldScope selects the gold population: lang or golfers.
	GoldScope string `koanf:"gold_scope"`

	// ScoreBarWidth is the total bar field width in cells.
	ScoreBarWidth int `koanf:"score_bar_width"`

	// HoleNameWidth is the hole name column width.
	HoleNameWidth int `koanf:"hole_name_width"`

	// Reverse flips the final row order of the report.
	Reverse bool `koanf:"reverse"`

	// NoColor disables ANSI color in the report.
	NoColor bool `koanf:"no_color"`

	// TimeoutMS bounds each API request.
	TimeoutMS int `koanf:"timeout_ms"`

	// Retries bounds attempts against the flaky solutions-log endpoint.
	Retries int `koanf:"retries"`

	// Workers sets the number of concurrent per-hole fetches.
	Workers int `koanf:"workers"`
}

// Default configuration constants.
const (
	defaultTimeoutMS = 30_000
	defaultRetries   = 10
	defaultWorkers   = 8
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		BaseURL:       "https://code.golf",
		Lang:          "rust",
		Scoring:       "bytes",
		GoldScope:     "lang",
		ScoreBarWidth: 20,
		HoleNameWidth: 33,
		TimeoutMS:     defaultTimeoutMS,
		Retries:       defaultRetries,
		Workers:       defaultWorkers,
	}
}
