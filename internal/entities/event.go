package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// EntityTypeEvent is the core.Entity type of a CanonicalEvent
const EntityTypeEvent = "canonical_event"

// CanonicalEvent is a fixed node of the story. Events form a chain
// through RequiredPreviousEventID; an empty value means no prerequisite.
type CanonicalEvent struct {
	ID                      string `json:"id" yaml:"id"`
	Title                   string `json:"title" yaml:"title"`
	Description             string `json:"description" yaml:"description"`
	Era                     Era    `json:"era" yaml:"era"`
	ChronologicalOrder      int    `json:"chronological_order" yaml:"order"`
	IsKeyMoment             bool   `json:"is_key_moment" yaml:"key_moment"`
	RequiredPreviousEventID string `json:"required_previous_event_id,omitempty" yaml:"requires,omitempty"`
}

// GetID implements core.Entity
func (e CanonicalEvent) GetID() string { return e.ID }

// GetType implements core.Entity
func (e CanonicalEvent) GetType() string { return EntityTypeEvent }

// HasPrerequisite reports whether another event must be completed first
func (e CanonicalEvent) HasPrerequisite() bool {
	return e.RequiredPreviousEventID != ""
}

// EraDisplayName returns the title of the event's arc
func (e CanonicalEvent) EraDisplayName() string {
	return e.Era.DisplayName()
}

// Validate checks the event on its own. Chain integrity across events
// is checked where the full set is loaded.
func (e CanonicalEvent) Validate() error {
	if e.ID == "" {
		return errors.InvariantViolation("event id is required")
	}
	if e.Title == "" {
		return errors.InvariantViolationf("event %s: title is required", e.ID)
	}
	if _, err := ParseEra(string(e.Era)); err != nil {
		return errors.Wrapf(err, "event %s", e.ID)
	}
	if e.ChronologicalOrder < 1 {
		return errors.InvariantViolationf("event %s: chronological order must be positive", e.ID)
	}
	if e.RequiredPreviousEventID == e.ID {
		return errors.InvariantViolationf("event %s: cannot require itself", e.ID)
	}
	return nil
}
