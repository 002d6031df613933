package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// Alignment tags decisions and emotions, and names the dominant side of a MoralState
type Alignment string

// Alignment values. Decisions and emotions use light, dark and neutral.
// A MoralState resolves to light, dark or balanced.
const (
	AlignmentLight    Alignment = "light"
	AlignmentDark     Alignment = "dark"
	AlignmentNeutral  Alignment = "neutral"
	AlignmentBalanced Alignment = "balanced"
)

// ParseDecisionAlignment accepts the three tags a decision may carry
func ParseDecisionAlignment(s string) (Alignment, error) {
	switch a := Alignment(s); a {
	case AlignmentLight, AlignmentDark, AlignmentNeutral:
		return a, nil
	default:
		return "", errors.InvariantViolationf("unknown decision alignment %q", s)
	}
}

// MoralShift is the direction a decision moved the balance
type MoralShift string

// MoralShift values
const (
	ShiftTowardLight MoralShift = "toward_light"
	ShiftTowardDark  MoralShift = "toward_dark"
	ShiftStable      MoralShift = "stable"
)

// ShiftDeadband is the largest balance swing still reported as stable
const ShiftDeadband = 5

// ShiftFromBalance classifies a change in balance
func ShiftFromBalance(before, after int) MoralShift {
	delta := after - before
	switch {
	case delta > ShiftDeadband:
		return ShiftTowardLight
	case delta < -ShiftDeadband:
		return ShiftTowardDark
	default:
		return ShiftStable
	}
}
