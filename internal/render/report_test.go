package render_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/okian/birdie/internal/domain/model"
	"github.com/okian/birdie/internal/domain/outcome"
	"github.com/okian/birdie/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func row(name string, a, b int) render.Row {
	gold := a
	if b < gold {
		gold = b
	}
	return render.Row{
		Hole:    model.Hole{ID: name, Name: name},
		A:       present(a),
		B:       present(b),
		Gold:    present(gold),
		Verdict: outcome.Compare(present(a), present(b)),
	}
}

func TestAssemblerRows(t *testing.T) {
	Convey("Given an assembler with color disabled", t, func() {
		bar, err := render.NewBar(10)
		So(err, ShouldBeNil)
		asm := render.NewAssembler(bar,
			render.WithNameWidth(20),
			render.WithGolfers("acotis", "lynn"),
			render.WithColor(false),
		)

		Convey("When rendering a hole the first golfer wins", func() {
			lines, err := asm.Lines([]render.Row{row("quine", 45, 50)}, outcome.Totals{Wins: 1})
			So(err, ShouldBeNil)
			So(lines, ShouldHaveLength, 2)

			Convey("Then the header carries the totals", func() {
				So(lines[0], ShouldEqual, "acotis vs lynn: 1 wins, 0 draws, 0 losses")
			})

			Convey("And the row shows the positive delta and all three lengths", func() {
				So(lines[1], ShouldContainSubstring, "+5 (45, 50, 45)")
				So(lines[1], ShouldStartWith, "quine ")
			})
		})

		Convey("When rendering a tied hole", func() {
			lines, err := asm.Lines([]render.Row{row("fizz-buzz", 60, 60)}, outcome.Totals{Draws: 1})
			So(err, ShouldBeNil)

			Convey("Then the delta is an unsigned zero", func() {
				So(lines[1], ShouldContainSubstring, "0 (60, 60, 60)")
				So(lines[1], ShouldNotContainSubstring, "+0")
			})
		})

		Convey("When one golfer has no score", func() {
			r := row("poker", 45, 45)
			r.B = missing()
			r.Gold = present(45)
			r.Verdict = outcome.Win
			lines, err := asm.Lines([]render.Row{r}, outcome.Totals{Wins: 1})
			So(err, ShouldBeNil)

			Convey("Then the missing length renders as a dash and the delta stays blank", func() {
				So(lines[1], ShouldContainSubstring, "(45, -, 45)")
				So(lines[1], ShouldNotContainSubstring, "+")
			})
		})
	})
}

func TestAssemblerSeamAlignment(t *testing.T) {
	Convey("Given 24 synthetic holes with wildly varying name lengths", t, func() {
		bar, err := render.NewBar(14)
		So(err, ShouldBeNil)
		asm := render.NewAssembler(bar,
			render.WithNameWidth(33),
			render.WithGolfers("acotis", "lynn"),
			render.WithColor(false),
		)

		rows := make([]render.Row, 0, 24)
		for i := 0; i < 24; i++ {
			name := strings.Repeat("x", i+1) + fmt.Sprintf("-%d", i)
			rows = append(rows, row(name, 40+i*3, 50+i))
		}

		Convey("When the report is assembled", func() {
			lines, err := asm.Lines(rows, outcome.Totals{})
			So(err, ShouldBeNil)

			Convey("Then the seam lands on the same column in every row", func() {
				want := 33 + bar.Half()
				for _, line := range lines[1:] {
					So(strings.Index(line, "|"), ShouldEqual, want)
				}
			})
		})
	})
}

func TestAssemblerNameColumn(t *testing.T) {
	Convey("Given a name column narrower than the widest hole name", t, func() {
		bar, err := render.NewBar(10)
		So(err, ShouldBeNil)
		asm := render.NewAssembler(bar,
			render.WithNameWidth(10),
			render.WithGolfers("acotis", "lynn"),
			render.WithColor(false),
		)

		Convey("When assembling", func() {
			_, err := asm.Lines([]render.Row{row("intersection-of-two-circles", 45, 50)}, outcome.Totals{})

			Convey("Then the run fails with a configuration error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, render.ErrNameColumnTooNarrow), ShouldBeTrue)
			})
		})
	})
}

func TestAssemblerReverse(t *testing.T) {
	Convey("Given the same rows assembled forward and reversed", t, func() {
		bar, err := render.NewBar(10)
		So(err, ShouldBeNil)
		rows := []render.Row{
			row("first", 45, 50),
			row("second", 60, 60),
			row("third", 70, 65),
		}
		totals := outcome.Totals{Wins: 1, Draws: 1, Losses: 1}

		forward := render.NewAssembler(bar,
			render.WithNameWidth(20), render.WithGolfers("acotis", "lynn"), render.WithColor(false))
		backward := render.NewAssembler(bar,
			render.WithNameWidth(20), render.WithGolfers("acotis", "lynn"), render.WithColor(false),
			render.WithReverse(true))

		fwd, err := forward.Lines(rows, totals)
		So(err, ShouldBeNil)
		rev, err := backward.Lines(rows, totals)
		So(err, ShouldBeNil)

		Convey("Then the header is identical", func() {
			So(rev[0], ShouldEqual, fwd[0])
		})

		Convey("And only the body order flips", func() {
			So(rev[1], ShouldEqual, fwd[3])
			So(rev[2], ShouldEqual, fwd[2])
			So(rev[3], ShouldEqual, fwd[1])
		})
	})
}

func TestAssemblerReference(t *testing.T) {
	Convey("Given an assembler with a reference golfer", t, func() {
		bar, err := render.NewBar(10)
		So(err, ShouldBeNil)
		asm := render.NewAssembler(bar,
			render.WithNameWidth(20),
			render.WithGolfers("acotis", "lynn"),
			render.WithReference("JayXon"),
			render.WithColor(false),
		)

		r := row("quine", 45, 50)
		r.Ref = present(45)
		r.HasRef = true

		Convey("When assembling", func() {
			lines, err := asm.Lines([]render.Row{r}, outcome.Totals{Wins: 1})
			So(err, ShouldBeNil)

			Convey("Then the header names the reference", func() {
				So(lines[0], ShouldContainSubstring, "(reference: JayXon)")
			})

			Convey("And the row carries the overlay marker", func() {
				So(lines[1], ShouldContainSubstring, "+")
			})
		})
	})
}
