// Package cutoff resolves a human-supplied partial date string into an
// instant boundary for filtering submissions.
//
// Granularity-only forms (YYYY, YYYY-MM, YYYY-MM-DD) mean "through the end
// of that period": a submission at the last instant of the period still
// qualifies. Forms with an explicit time mean "up to this exact moment":
// a submission at exactly that instant does NOT qualify. Both are stored
// as a single exclusive upper bound; the granularity forms round up to the
// start of the following period.
package cutoff

import (
	"fmt"
	"time"
)

// Granularity describes how much of the timestamp was supplied.
type Granularity int

const (
	// None means no cutoff was supplied; everything qualifies.
	None Granularity = iota
	Year
	Month
	Day
	Instant
)

func (g Granularity) String() string {
	switch g {
	case None:
		return "none"
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Instant:
		return "instant"
	default:
		return "unknown"
	}
}

// Cutoff is a resolved upper bound on submission instants. The zero value
// is unbounded.
type Cutoff struct {
	bound       time.Time
	bounded     bool
	granularity Granularity
}

// layouts maps accepted input shapes to the period they denote. Order
// matters: longer layouts first so a trailing seconds component is never
// silently dropped.
var layouts = []struct {
	layout      string
	granularity Granularity
}{
	{"2006-01-02 15:04:05", Instant},
	{"2006-01-02 15:04", Instant},
	{"2006-01-02", Day},
	{"2006-01", Month},
	{"2006", Year},
}

// Parse resolves a cutoff string. The empty string resolves to an
// unbounded cutoff. Malformed strings and out-of-range calendar
// components (month 13, day 32) fail with ErrParse.
func Parse(s string) (Cutoff, error) {
	if s == "" {
		return Cutoff{}, nil
	}

	for _, l := range layouts {
		t, err := time.ParseInLocation(l.layout, s, time.UTC)
		if err != nil {
			continue
		}
		return Cutoff{
			bound:       exclusiveBound(t, l.granularity),
			bounded:     true,
			granularity: l.granularity,
		}, nil
	}

	return Cutoff{}, fmt.Errorf("%w: %q (want YYYY, YYYY-MM, YYYY-MM-DD, or YYYY-MM-DD HH:MM[:SS])", ErrParse, s)
}

// exclusiveBound turns the parsed period start into an exclusive upper
// bound. A year resolves to the first instant of the next year, a month
// to the first instant of the next month, a day to the next midnight.
// An explicit instant is its own exclusive bound.
func exclusiveBound(t time.Time, g Granularity) time.Time {
	switch g {
	case Year:
		return t.AddDate(1, 0, 0)
	case Month:
		return t.AddDate(0, 1, 0)
	case Day:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

// Includes reports whether a submission at instant t qualifies.
func (c Cutoff) Includes(t time.Time) bool {
	if !c.bounded {
		return true
	}
	return t.Before(c.bound)
}

// Bounded reports whether any cutoff was supplied.
func (c Cutoff) Bounded() bool { return c.bounded }

// Granularity returns the granularity of the supplied string.
func (c Cutoff) Granularity() Granularity { return c.granularity }

// String renders the resolved bound for logging.
func (c Cutoff) String() string {
	if !c.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("before %s (%s)", c.bound.Format(time.RFC3339), c.granularity)
}
