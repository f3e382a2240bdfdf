package reduce_test

import (
	"testing"
	"time"

	"github.com/okian/birdie/internal/domain/cutoff"
	"github.com/okian/birdie/internal/domain/model"
	"github.com/okian/birdie/internal/domain/reduce"
	. "github.com/smartystreets/goconvey/convey"
)

func sol(golfer string, bytes, chars int, submitted string) model.Solution {
	ts, err := time.Parse(time.RFC3339, submitted)
	if err != nil {
		panic(err)
	}
	return model.Solution{
		Bytes:     bytes,
		Chars:     chars,
		Golfer:    golfer,
		Hole:      "quine",
		Lang:      "rust",
		Scoring:   "bytes",
		Submitted: ts,
	}
}

func TestHoleBestPerGolfer(t *testing.T) {
	Convey("Given a golfer with submissions at lengths 50, 45, 60", t, func() {
		solutions := []model.Solution{
			sol("acotis", 50, 50, "2024-03-01T10:00:00Z"),
			sol("acotis", 45, 45, "2025-06-01T10:00:00Z"),
			sol("acotis", 60, 60, "2023-01-01T10:00:00Z"),
		}

		Convey("When the cutoff excludes the 45-length submission", func() {
			cut, err := cutoff.Parse("2024")
			So(err, ShouldBeNil)
			res := reduce.Hole(solutions, model.ScoringBytes, cut, []string{"acotis", "lynn"}, reduce.GoldScopeLang)

			Convey("Then the best is 50, not 45", func() {
				So(res.Best["acotis"].OK, ShouldBeTrue)
				So(res.Best["acotis"].Length, ShouldEqual, 50)
			})

			Convey("And a golfer with no submissions has no score, not an error", func() {
				So(res.Best["lynn"].OK, ShouldBeFalse)
			})
		})

		Convey("When no cutoff is supplied", func() {
			cut, err := cutoff.Parse("")
			So(err, ShouldBeNil)
			res := reduce.Hole(solutions, model.ScoringBytes, cut, []string{"acotis"}, reduce.GoldScopeLang)

			Convey("Then the overall minimum wins", func() {
				So(res.Best["acotis"].Length, ShouldEqual, 45)
			})
		})
	})
}

func TestHoleScoringTagFilter(t *testing.T) {
	Convey("Given a log mixing bytes-scored and chars-scored records", t, func() {
		charScored := sol("acotis", 10, 10, "2024-01-01T00:00:00Z")
		charScored.Scoring = "chars"
		solutions := []model.Solution{
			charScored,
			sol("acotis", 40, 40, "2024-01-01T00:00:00Z"),
		}

		Convey("When reducing in bytes mode", func() {
			res := reduce.Hole(solutions, model.ScoringBytes, cutoff.Cutoff{}, []string{"acotis"}, reduce.GoldScopeLang)

			Convey("Then only bytes-scored records participate", func() {
				So(res.Best["acotis"].Length, ShouldEqual, 40)
				So(res.Gold.Length, ShouldEqual, 40)
			})
		})
	})
}

func TestHoleCharsMode(t *testing.T) {
	Convey("Given a non-ASCII solution where bytes and chars diverge", t, func() {
		s := sol("lynn", 30, 12, "2024-01-01T00:00:00Z")
		s.Scoring = "chars"
		plain := sol("acotis", 20, 20, "2024-01-01T00:00:00Z")
		plain.Scoring = "chars"
		solutions := []model.Solution{s, plain}

		Convey("When reducing in chars mode", func() {
			res := reduce.Hole(solutions, model.ScoringChars, cutoff.Cutoff{}, []string{"lynn", "acotis"}, reduce.GoldScopeLang)

			Convey("Then the character count is used, never the byte count", func() {
				So(res.Best["lynn"].Length, ShouldEqual, 12)
				So(res.Best["acotis"].Length, ShouldEqual, 20)
				So(res.Gold.Length, ShouldEqual, 12)
			})
		})
	})
}

func TestHoleGoldScope(t *testing.T) {
	Convey("Given a hole where an uncompared golfer holds the best score", t, func() {
		solutions := []model.Solution{
			sol("acotis", 50, 50, "2024-01-01T00:00:00Z"),
			sol("lynn", 55, 55, "2024-01-01T00:00:00Z"),
			sol("primo", 38, 38, "2024-01-01T00:00:00Z"),
		}
		golfers := []string{"acotis", "lynn"}

		Convey("When the gold scope is lang (the default policy)", func() {
			res := reduce.Hole(solutions, model.ScoringBytes, cutoff.Cutoff{}, golfers, reduce.GoldScopeLang)

			Convey("Then gold reflects the whole leaderboard", func() {
				So(res.Gold.OK, ShouldBeTrue)
				So(res.Gold.Length, ShouldEqual, 38)
			})
		})

		Convey("When the gold scope is restricted to the compared golfers", func() {
			res := reduce.Hole(solutions, model.ScoringBytes, cutoff.Cutoff{}, golfers, reduce.GoldScopeGolfers)

			Convey("Then the uncompared golfer's score does not count", func() {
				So(res.Gold.Length, ShouldEqual, 50)
			})
		})
	})
}

func TestHoleEmpty(t *testing.T) {
	Convey("Given a hole with no qualifying submissions", t, func() {
		res := reduce.Hole(nil, model.ScoringBytes, cutoff.Cutoff{}, []string{"acotis", "lynn"}, reduce.GoldScopeLang)

		Convey("Then every golfer and the gold are absent, not errors", func() {
			So(res.Best["acotis"].OK, ShouldBeFalse)
			So(res.Best["lynn"].OK, ShouldBeFalse)
			So(res.Gold.OK, ShouldBeFalse)
		})
	})
}

func TestParseGoldScope(t *testing.T) {
	Convey("Given gold scope identifiers", t, func() {
		Convey("Then known scopes parse", func() {
			s, err := reduce.ParseGoldScope("lang")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, reduce.GoldScopeLang)

			s, err = reduce.ParseGoldScope("golfers")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, reduce.GoldScopeGolfers)
		})

		Convey("And unknown scopes fail", func() {
			_, err := reduce.ParseGoldScope("world")
			So(err, ShouldNotBeNil)
		})
	})
}
