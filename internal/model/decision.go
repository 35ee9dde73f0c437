package model

import "fmt"

// Decision is an explicit per-row user choice for an out-of-range date.
type Decision string

const (
	DecisionKeep    Decision = "keep"    // include with the original date
	DecisionAdjust  Decision = "adjust"  // include with the date snapped to the boundary
	DecisionExclude Decision = "exclude" // drop the row
)

// ParseDecision converts a free-form string into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionKeep, DecisionAdjust, DecisionExclude:
		return Decision(s), nil
	}
	return "", fmt.Errorf("unknown decision %q (want keep, adjust or exclude)", s)
}
