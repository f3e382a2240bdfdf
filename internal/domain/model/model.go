// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Hole is one challenge in the code.golf catalog. The catalog is fetched
// once at startup and its order is the canonical row order of the report.
type Hole struct {
	Category string     `json:"category"`
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Preamble string     `json:"preamble"`
	Links    []HoleLink `json:"links"`
}

// HoleLink is a reference link attached to a hole's preamble.
type HoleLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Solution is one submission record from the solutions log.
//
// The log cannot distinguish live submissions from ones later invalidated
// or deleted on the server side; that approximation is accepted upstream
// and not modeled here.
type Solution struct {
	Bytes     int       `json:"bytes"`
	Chars     int       `json:"chars"`
	Golfer    string    `json:"golfer"`
	Hole      string    `json:"hole"`
	Lang      string    `json:"lang"`
	Scoring   string    `json:"scoring"`
	Submitted time.Time `json:"submitted"`
	Text      string    `json:"text,omitempty"`
}

// SolutionLog pairs a hole with its full submission history.
type SolutionLog struct {
	HoleID    string
	Solutions []Solution
}

// ScoringMode selects which length metric a submission is scored on.
type ScoringMode string

// Supported scoring modes. Byte and character counts diverge for
// non-ASCII solutions and must never be conflated.
const (
	ScoringBytes ScoringMode = "bytes"
	ScoringChars ScoringMode = "chars"
)

// ParseScoringMode validates a scoring mode identifier.
func ParseScoringMode(s string) (ScoringMode, error) {
	switch ScoringMode(strings.ToLower(strings.TrimSpace(s))) {
	case ScoringBytes:
		return ScoringBytes, nil
	case ScoringChars:
		return ScoringChars, nil
	default:
		return "", fmt.Errorf("unknown scoring mode: %q (want bytes or chars)", s)
	}
}

func (m ScoringMode) String() string { return string(m) }

// Length returns the solution's length under the given scoring mode.
// When the log omits the character count but carries the raw text, the
// count is derived from the text.
func (s Solution) Length(mode ScoringMode) int {
	if mode == ScoringChars {
		if s.Chars == 0 && s.Text != "" {
			return utf8.RuneCountInString(s.Text)
		}
		return s.Chars
	}
	return s.Bytes
}
