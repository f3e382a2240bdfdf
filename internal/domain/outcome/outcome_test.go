package outcome_test

import (
	"testing"

	"github.com/okian/birdie/internal/domain/outcome"
	"github.com/okian/birdie/internal/domain/reduce"
	. "github.com/smartystreets/goconvey/convey"
)

func present(n int) reduce.BestScore { return reduce.BestScore{Length: n, OK: true} }
func missing() reduce.BestScore     { return reduce.BestScore{} }

func TestCompare(t *testing.T) {
	Convey("Given two best scores", t, func() {
		Convey("Then a strictly smaller length wins", func() {
			So(outcome.Compare(present(45), present(50)), ShouldEqual, outcome.Win)
			So(outcome.Compare(present(50), present(45)), ShouldEqual, outcome.Loss)
		})

		Convey("And equal lengths draw", func() {
			So(outcome.Compare(present(50), present(50)), ShouldEqual, outcome.Draw)
		})

		Convey("And both missing draws", func() {
			So(outcome.Compare(missing(), missing()), ShouldEqual, outcome.Draw)
		})

		Convey("And a present score beats a missing one", func() {
			So(outcome.Compare(present(120), missing()), ShouldEqual, outcome.Win)
			So(outcome.Compare(missing(), present(120)), ShouldEqual, outcome.Loss)
		})
	})
}

// mirror maps a verdict to its counterpart from the other golfer's side.
func mirror(v outcome.Verdict) outcome.Verdict {
	switch v {
	case outcome.Win:
		return outcome.Loss
	case outcome.Loss:
		return outcome.Win
	default:
		return outcome.Draw
	}
}

func TestCompareSymmetry(t *testing.T) {
	Convey("Given every pairing of present and missing lengths", t, func() {
		scores := []reduce.BestScore{
			missing(),
			present(1),
			present(45),
			present(50),
			present(50),
			present(9999),
		}

		Convey("Then outcome(a, b) is always the mirror of outcome(b, a)", func() {
			for _, a := range scores {
				for _, b := range scores {
					So(outcome.Compare(a, b), ShouldEqual, mirror(outcome.Compare(b, a)))
				}
			}
		})

		Convey("And equal or both-missing pairs always draw", func() {
			for _, s := range scores {
				So(outcome.Compare(s, s), ShouldEqual, outcome.Draw)
			}
		})
	})
}

func TestTally(t *testing.T) {
	Convey("Given a sequence of per-hole verdicts", t, func() {
		verdicts := []outcome.Verdict{
			outcome.Win,
			outcome.Draw,
			outcome.Loss,
			outcome.Win,
			outcome.Draw,
		}

		Convey("Then the fold counts each verdict once", func() {
			totals := outcome.Tally(verdicts)
			So(totals.Wins, ShouldEqual, 2)
			So(totals.Draws, ShouldEqual, 2)
			So(totals.Losses, ShouldEqual, 1)
		})
	})

	Convey("Given no holes", t, func() {
		totals := outcome.Tally(nil)

		Convey("Then all totals are zero", func() {
			So(totals, ShouldResemble, outcome.Totals{})
		})
	})
}
