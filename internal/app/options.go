package app

import (
	"github.com/okian/birdie/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the API fetcher dependency.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithGolfers sets the two primary golfers being compared.
func WithGolfers(first, second string) Option {
	return func(s *Service) {
		s.golferA = first
		s.golferB = second
	}
}

// WithReference sets the optional third golfer shown as an overlay only.
func WithReference(name string) Option {
	return func(s *Service) {
		s.reference = name
	}
}

// WithLanguage sets the submission language filter.
func WithLanguage(lang string) Option {
	return func(s *Service) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// WithCutoff sets the as-of cutoff string; empty means no filtering.
func WithCutoff(spec string) Option {
	return func(s *Service) {
		s.cutoffSpec = spec
	}
}

// WithScoring sets the scoring mode identifier (bytes or chars).
func WithScoring(mode string) Option {
	return func(s *Service) {
		if mode != "" {
			s.scoringSpec = mode
		}
	}
}

// WithGoldScope sets the gold scope policy identifier (lang or golfers).
func WithGoldScope(scope string) Option {
	return func(s *Service) {
		if scope != "" {
			s.goldScopeSpec = scope
		}
	}
}

// WithBarWidth sets the configured total score bar width.
func WithBarWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.barWidth = width
		}
	}
}

// WithNameWidth sets the hole name column width.
func WithNameWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.nameWidth = width
		}
	}
}

// WithReverse reverses the final row order of the report.
func WithReverse(reverse bool) Option {
	return func(s *Service) {
		s.reverse = reverse
	}
}

// WithColor enables or disables ANSI color in the report.
func WithColor(enabled bool) Option {
	return func(s *Service) {
		s.color = enabled
	}
}
