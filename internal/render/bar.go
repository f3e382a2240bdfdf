// Package render turns reduced scores into the fixed-width scoreboard.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/birdie/internal/domain/reduce"
)

// Bar cell characters. The seam marks the shared zero point of both
// golfers' segments and must land on the same column in every row.
const (
	fillCell  = "#"
	emptyCell = "."
	seamCell  = "|"
	refMarker = "+"
)

// minBarCells is the smallest renderable total width: one filled and one
// empty cell per side.
const minBarCells = 4

// Bar renders score bars at a fixed effective width. The configured width
// is the TOTAL field shared by both golfers; an odd width cannot place the
// seam on the exact center column, so it is bumped by one. The adjustment
// happens once per invocation and applies to every row.
type Bar struct {
	width int // effective total width, always even
}

// NewBar validates and adjusts the configured total width.
func NewBar(configured int) (*Bar, error) {
	w := configured
	if w%2 != 0 {
		w++
	}
	if w < minBarCells {
		return nil, fmt.Errorf("%w: %d effective cells, need at least %d", ErrBarTooNarrow, w, minBarCells)
	}
	return &Bar{width: w}, nil
}

// Width returns the effective total width after adjustment.
func (b *Bar) Width() int { return b.width }

// Half returns the cell count of one golfer's segment.
func (b *Bar) Half() int { return b.width / 2 }

// cells maps a score onto filled cell count for one segment. The segment
// shows the fraction gold/length, full when the score is the gold. A
// missing score is all empty; a present score always fills at least one
// cell so it stays distinguishable from a missing one.
func (b *Bar) cells(score, gold reduce.BestScore) int {
	if !score.OK || !gold.OK || score.Length <= 0 {
		return 0
	}
	ratio := float64(gold.Length) / float64(score.Length)
	if ratio > 1 {
		ratio = 1
	}
	half := b.Half()
	n := int(math.Round(ratio * float64(half)))
	if n < 1 {
		n = 1
	}
	if n > half {
		n = half
	}
	return n
}

// Left renders a segment growing leftward from the seam.
func (b *Bar) Left(score, gold reduce.BestScore) string {
	n := b.cells(score, gold)
	return strings.Repeat(emptyCell, b.Half()-n) + strings.Repeat(fillCell, n)
}

// Right renders a segment growing rightward from the seam.
func (b *Bar) Right(score, gold reduce.BestScore) string {
	n := b.cells(score, gold)
	return strings.Repeat(fillCell, n) + strings.Repeat(emptyCell, b.Half()-n)
}

// Combined renders the full bar field for one row: the first golfer's
// segment mirrored on the left, the seam, the second golfer's segment on
// the right. When hasRef is set, the reference golfer's score is overlaid
// as a marker at the tip of its own would-be segment on the right side,
// without altering any widths.
func (b *Bar) Combined(a, bb reduce.BestScore, ref reduce.BestScore, hasRef bool, gold reduce.BestScore) string {
	right := b.Right(bb, gold)
	if hasRef && ref.OK && gold.OK {
		pos := b.cells(ref, gold) - 1
		if pos >= 0 {
			cells := strings.Split(right, "")
			cells[pos] = refMarker
			right = strings.Join(cells, "")
		}
	}
	return b.Left(a, gold) + seamCell + right
}
