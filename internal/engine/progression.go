package engine

import (
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// ReasonPreviousEventNotCompleted is returned when the chain prerequisite is missing
const ReasonPreviousEventNotCompleted = "previous event not completed"

// EventStatus is how an event appears on a session's timeline
type EventStatus string

// EventStatus values
const (
	StatusCompleted EventStatus = "completed"
	StatusAvailable EventStatus = "available"
	StatusLocked    EventStatus = "locked"
)

// CompletedSet holds the distinct event ids a session has recorded
type CompletedSet map[string]struct{}

// NewCompletedSet deduplicates ids into a set
func NewCompletedSet(ids ...string) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is completed
func (c CompletedSet) Has(id string) bool {
	_, ok := c[id]
	return ok
}

// Len is the number of distinct completed events
func (c CompletedSet) Len() int { return len(c) }

// AccessResult is the outcome of an access check
type AccessResult struct {
	Granted bool
	Reason  string
}

// CanAccessEvent checks the event's single prerequisite. The character
// is accepted so moral gating can be added without changing callers;
// today it does not affect the result.
func CanAccessEvent(event entities.CanonicalEvent, completed CompletedSet, _ entities.Character) AccessResult {
	if event.HasPrerequisite() && !completed.Has(event.RequiredPreviousEventID) {
		return AccessResult{Granted: false, Reason: ReasonPreviousEventNotCompleted}
	}
	return AccessResult{Granted: true}
}

// StatusOf places an event on the timeline
func StatusOf(event entities.CanonicalEvent, completed CompletedSet, character entities.Character) EventStatus {
	if completed.Has(event.ID) {
		return StatusCompleted
	}
	if CanAccessEvent(event, completed, character).Granted {
		return StatusAvailable
	}
	return StatusLocked
}

// NextAvailableEvents returns events neither completed nor locked,
// in chronological order
func NextAvailableEvents(events []entities.CanonicalEvent, completed CompletedSet, character entities.Character) []entities.CanonicalEvent {
	available := make([]entities.CanonicalEvent, 0, len(events))
	for _, e := range events {
		if StatusOf(e, completed, character) == StatusAvailable {
			available = append(available, e)
		}
	}
	SortChronologically(available)
	return available
}

// CalculateProgress is round(completed/total*100), and 0 when total is 0
func CalculateProgress(total, completed int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// IsJourneyComplete reports whether every key moment is completed.
// Events that are not key moments never block completion.
func IsJourneyComplete(events []entities.CanonicalEvent, completed CompletedSet) bool {
	for _, e := range events {
		if e.IsKeyMoment && !completed.Has(e.ID) {
			return false
		}
	}
	return true
}

// EraGroup is the events of one story arc
type EraGroup struct {
	Era    entities.Era
	Events []entities.CanonicalEvent
}

// GroupEventsByEra buckets events by arc. Groups follow story order,
// events inside a group follow chronological order, and empty arcs are omitted.
func GroupEventsByEra(events []entities.CanonicalEvent) []EraGroup {
	byEra := make(map[entities.Era][]entities.CanonicalEvent)
	for _, e := range events {
		byEra[e.Era] = append(byEra[e.Era], e)
	}

	eras := make([]entities.Era, 0, len(byEra))
	for era := range byEra {
		eras = append(eras, era)
	}
	// Unknown eras sort after the known ones
	sort.Slice(eras, func(i, j int) bool {
		ii, jj := eraRank(eras[i]), eraRank(eras[j])
		if ii != jj {
			return ii < jj
		}
		return eras[i] < eras[j]
	})

	groups := make([]EraGroup, 0, len(eras))
	for _, era := range eras {
		list := byEra[era]
		SortChronologically(list)
		groups = append(groups, EraGroup{Era: era, Events: list})
	}
	return groups
}

// SortChronologically orders events in place by chronological order, then id
func SortChronologically(events []entities.CanonicalEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ChronologicalOrder != events[j].ChronologicalOrder {
			return events[i].ChronologicalOrder < events[j].ChronologicalOrder
		}
		return events[i].ID < events[j].ID
	})
}

// SortDecisions orders decisions in place by display order, then id
func SortDecisions(decisions []entities.Decision) {
	sort.SliceStable(decisions, func(i, j int) bool {
		if decisions[i].DisplayOrder != decisions[j].DisplayOrder {
			return decisions[i].DisplayOrder < decisions[j].DisplayOrder
		}
		return decisions[i].ID < decisions[j].ID
	})
}

func eraRank(e entities.Era) int {
	if i := e.Index(); i >= 0 {
		return i
	}
	return math.MaxInt
}
