// Package daterange classifies transaction dates against a statement
// period and snaps out-of-range dates to the nearest boundary.
package daterange

import (
	"fmt"
	"time"
)

// Position locates a date relative to a statement period.
type Position string

const (
	Before Position = "before"
	Within Position = "within"
	After  Position = "after"
)

// Range is an inclusive [start, end] statement period. It carries no
// hidden state and is safe to share across row evaluations.
type Range struct {
	start time.Time
	end   time.Time
}

// New builds a Range, rejecting boundaries with start after end.
func New(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("invalid statement period: start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return Range{start: start, end: end}, nil
}

// Start returns the inclusive lower boundary.
func (r Range) Start() time.Time { return r.start }

// End returns the inclusive upper boundary.
func (r Range) End() time.Time { return r.end }

// Classify places a date before, within or after the period. Boundary
// dates are within.
func (r Range) Classify(d time.Time) Position {
	switch {
	case d.Before(r.start):
		return Before
	case d.After(r.end):
		return After
	default:
		return Within
	}
}

// Snap maps an out-of-range date to the nearest boundary; dates already
// within the period are returned unchanged.
func (r Range) Snap(d time.Time) time.Time {
	switch r.Classify(d) {
	case Before:
		return r.start
	case After:
		return r.end
	default:
		return d
	}
}
