package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/okian/birdie/internal/domain/model"
	"github.com/okian/birdie/internal/domain/outcome"
	"github.com/okian/birdie/internal/domain/reduce"
)

// Default layout constants.
const (
	defaultNameWidth = 33
	nameMargin       = 1 // blank cells between the longest name and the bar
	deltaWidth       = 5
)

// Row is everything needed to render one hole line.
type Row struct {
	Hole    model.Hole
	A       reduce.BestScore
	B       reduce.BestScore
	Ref     reduce.BestScore
	HasRef  bool
	Gold    reduce.BestScore
	Verdict outcome.Verdict
}

// Assembler merges hole names, bars, and deltas into aligned text lines.
type Assembler struct {
	bar       *Bar
	nameWidth int
	golferA   string
	golferB   string
	reference string
	reverse   bool
	color     bool

	winStyle  lipgloss.Style
	lossStyle lipgloss.Style
	headStyle lipgloss.Style
}

// NewAssembler creates an Assembler around a validated bar renderer.
func NewAssembler(bar *Bar, opts ...Option) *Assembler {
	a := &Assembler{
		bar:       bar,
		nameWidth: defaultNameWidth,
		winStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lossStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		headStyle: lipgloss.NewStyle().Bold(true),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lines renders the header followed by one line per row. Rows arrive in
// canonical catalog order with all values already computed; reversal only
// flips the emitted sequence.
func (a *Assembler) Lines(rows []Row, totals outcome.Totals) ([]string, error) {
	if err := a.validateNameWidth(rows); err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, a.header(totals))

	body := make([]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, a.line(row))
	}
	if a.reverse {
		for i, j := 0, len(body)-1; i < j; i, j = i+1, j-1 {
			body[i], body[j] = body[j], body[i]
		}
	}

	return append(lines, body...), nil
}

// validateNameWidth rejects a name column that cannot hold the widest
// catalog name plus the trailing margin. This is a configuration error,
// never silently truncated away.
func (a *Assembler) validateNameWidth(rows []Row) error {
	widest := 0
	for _, row := range rows {
		if n := len(row.Hole.Name); n > widest {
			widest = n
		}
	}
	if a.nameWidth < widest+nameMargin {
		return fmt.Errorf("%w: width %d, widest hole name needs %d", ErrNameColumnTooNarrow, a.nameWidth, widest+nameMargin)
	}
	return nil
}

func (a *Assembler) header(totals outcome.Totals) string {
	head := fmt.Sprintf("%s vs %s: %d wins, %d draws, %d losses",
		a.golferA, a.golferB, totals.Wins, totals.Draws, totals.Losses)
	if a.reference != "" {
		head += fmt.Sprintf(" (reference: %s)", a.reference)
	}
	if a.color {
		return a.headStyle.Render(head)
	}
	return head
}

func (a *Assembler) line(row Row) string {
	bar := a.bar.Combined(row.A, row.B, row.Ref, row.HasRef, row.Gold)
	return fmt.Sprintf("%s%s %s (%s, %s, %s)",
		a.padName(row.Hole.Name),
		bar,
		a.delta(row),
		length(row.A), length(row.B), length(row.Gold),
	)
}

// padName left-aligns the name into the fixed column, keeping at least
// one trailing blank before the bar.
func (a *Assembler) padName(name string) string {
	if len(name) > a.nameWidth-nameMargin {
		name = name[:a.nameWidth-nameMargin]
	}
	return fmt.Sprintf("%-*s", a.nameWidth, name)
}

// delta is the signed length difference, positive when the first golfer
// is ahead. Blank unless both scores are present; a tie prints unsigned 0.
// Padding happens before styling so ANSI codes never shift the column.
func (a *Assembler) delta(row Row) string {
	if !row.A.OK || !row.B.OK {
		return fmt.Sprintf("%*s", deltaWidth, "")
	}
	d := row.B.Length - row.A.Length
	text := strconv.Itoa(d)
	if d > 0 {
		text = "+" + text
	}
	text = fmt.Sprintf("%*s", deltaWidth, text)
	if a.color {
		switch row.Verdict {
		case outcome.Win:
			text = a.winStyle.Render(text)
		case outcome.Loss:
			text = a.lossStyle.Render(text)
		}
	}
	return text
}

func length(s reduce.BestScore) string {
	if !s.OK {
		return "-"
	}
	return strconv.Itoa(s.Length)
}
