// Package reduce folds a hole's raw submission history into each golfer's
// best visible score and the hole's gold as of a cutoff.
package reduce

import (
	"fmt"
	"strings"

	"github.com/okian/birdie/internal/domain/cutoff"
	"github.com/okian/birdie/internal/domain/model"
)

// GoldScope selects which submissions compete for a hole's gold.
type GoldScope string

const (
	// GoldScopeLang takes the best length across every golfer present in
	// the language-filtered log, not just the compared golfers. This is
	// the default.
	GoldScopeLang GoldScope = "lang"

	// GoldScopeGolfers restricts gold to the compared (and reference)
	// golfers only.
	GoldScopeGolfers GoldScope = "golfers"
)

// ParseGoldScope validates a gold scope identifier.
func ParseGoldScope(s string) (GoldScope, error) {
	switch GoldScope(strings.ToLower(strings.TrimSpace(s))) {
	case GoldScopeLang:
		return GoldScopeLang, nil
	case GoldScopeGolfers:
		return GoldScopeGolfers, nil
	default:
		return "", fmt.Errorf("unknown gold scope: %q (want lang or golfers)", s)
	}
}

// BestScore is an optional best length. A golfer with no qualifying
// submission has OK == false; that is a normal state, never an error.
type BestScore struct {
	Length int
	OK     bool
}

// better reports whether candidate length n improves on the current best.
func (b BestScore) better(n int) bool {
	return !b.OK || n < b.Length
}

// Result is the reduction of one hole.
type Result struct {
	// Best maps each requested golfer to their best qualifying length.
	// Every requested golfer has an entry, present or not.
	Best map[string]BestScore

	// Gold is the shortest qualifying length within the configured scope.
	// Absent when the hole has no qualifying submissions at all; the hole
	// still appears in the report with empty bars.
	Gold BestScore
}

// Hole reduces one hole's submission list. Only submissions whose scoring
// tag matches mode and whose instant passes the cutoff participate. Best
// lengths are computed for the requested golfers; gold is computed over
// the scope's population.
func Hole(solutions []model.Solution, mode model.ScoringMode, cut cutoff.Cutoff, golfers []string, scope GoldScope) Result {
	res := Result{Best: make(map[string]BestScore, len(golfers))}
	for _, g := range golfers {
		res.Best[g] = BestScore{}
	}

	for _, sol := range solutions {
		if sol.Scoring != mode.String() {
			continue
		}
		if !cut.Includes(sol.Submitted) {
			continue
		}
		n := sol.Length(mode)

		if best, requested := res.Best[sol.Golfer]; requested && best.better(n) {
			res.Best[sol.Golfer] = BestScore{Length: n, OK: true}
		}

		if scope == GoldScopeGolfers {
			if _, requested := res.Best[sol.Golfer]; !requested {
				continue
			}
		}
		if res.Gold.better(n) {
			res.Gold = BestScore{Length: n, OK: true}
		}
	}

	return res
}
