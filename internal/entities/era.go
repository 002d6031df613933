package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// Era is one of the four ordered story arcs
type Era string

// Eras in story order
const (
	EraAwakening      Era = "awakening"
	EraApprenticeship Era = "apprenticeship"
	EraShadowWar      Era = "shadow_war"
	EraReckoning      Era = "reckoning"
)

var eraOrder = []Era{EraAwakening, EraApprenticeship, EraShadowWar, EraReckoning}

var eraNames = map[Era]string{
	EraAwakening:      "The Awakening",
	EraApprenticeship: "Years of Apprenticeship",
	EraShadowWar:      "The Shadow War",
	EraReckoning:      "The Reckoning",
}

// Eras lists every era in story order
func Eras() []Era {
	out := make([]Era, len(eraOrder))
	copy(out, eraOrder)
	return out
}

// ParseEra rejects tags outside the four arcs
func ParseEra(s string) (Era, error) {
	e := Era(s)
	if _, ok := eraNames[e]; !ok {
		return "", errors.InvariantViolationf("unknown era %q", s)
	}
	return e, nil
}

// DisplayName returns the arc's title
func (e Era) DisplayName() string {
	return eraNames[e]
}

// Index is the arc's position in story order, or -1 when unknown
func (e Era) Index() int {
	for i, era := range eraOrder {
		if era == e {
			return i
		}
	}
	return -1
}
