// Package outcome compares two golfers' best lengths into per-hole
// verdicts and aggregate totals.
package outcome

import "github.com/okian/birdie/internal/domain/reduce"

// Verdict is a per-hole result from the first golfer's perspective.
type Verdict int

const (
	Draw Verdict = iota
	Win
	Loss
)

func (v Verdict) String() string {
	switch v {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// Compare produces the verdict for one hole. A strictly smaller length
// wins. Equal lengths draw, as do two missing scores. A present score
// beats a missing one.
func Compare(a, b reduce.BestScore) Verdict {
	switch {
	case !a.OK && !b.OK:
		return Draw
	case a.OK && !b.OK:
		return Win
	case !a.OK && b.OK:
		return Loss
	case a.Length < b.Length:
		return Win
	case a.Length > b.Length:
		return Loss
	default:
		return Draw
	}
}

// Totals aggregates per-hole verdicts for the report header, still from
// the first golfer's perspective.
type Totals struct {
	Wins   int
	Losses int
	Draws  int
}

// Tally folds verdicts into totals. Each hole contributes exactly one
// verdict; nothing carries over between holes.
func Tally(verdicts []Verdict) Totals {
	var t Totals
	for _, v := range verdicts {
		switch v {
		case Win:
			t.Wins++
		case Loss:
			t.Losses++
		default:
			t.Draws++
		}
	}
	return t
}
