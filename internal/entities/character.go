package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

// EntityTypeCharacter is the core.Entity type of a Character
const EntityTypeCharacter = "character"

var (
	_ core.Entity = Character{}
	_ core.Entity = CanonicalEvent{}
)

// DefaultProtagonistName is used when no name is configured
const DefaultProtagonistName = "Kael Varyn"

// Character is the protagonist of one session. Updates return a new
// value; callers replace their copy rather than mutating it.
//
// Version increments on every successful save and guards concurrent writers.
type Character struct {
	ID         string     `json:"id"`
	SessionID  string     `json:"session_id"`
	Name       string     `json:"name"`
	MoralState MoralState `json:"moral_state"`
	Emotion    Emotion    `json:"emotion"`
	Title      Title      `json:"title"`
	Version    int64      `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewProtagonist builds the starting character for a session
func NewProtagonist(id, sessionID, name string, now time.Time) Character {
	if name == "" {
		name = DefaultProtagonistName
	}
	return Character{
		ID:         id,
		SessionID:  sessionID,
		Name:       name,
		MoralState: InitialMoralState(),
		Emotion:    EmotionHope,
		Title:      TitleApprentice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GetID implements core.Entity
func (c Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c Character) GetType() string { return EntityTypeCharacter }

// WithMoralState returns a copy carrying m
func (c Character) WithMoralState(m MoralState, now time.Time) Character {
	c.MoralState = m
	c.UpdatedAt = now
	return c
}

// WithEmotion returns a copy carrying e
func (c Character) WithEmotion(e Emotion, now time.Time) Character {
	c.Emotion = e
	c.UpdatedAt = now
	return c
}

// WithTitle returns a copy carrying t
func (c Character) WithTitle(t Title, now time.Time) Character {
	c.Title = t
	c.UpdatedAt = now
	return c
}

// HasFallen delegates to the moral state
func (c Character) HasFallen() bool {
	return c.MoralState.HasFallen()
}

// Validate checks identity and enum membership, used after loading from storage
func (c Character) Validate() error {
	if c.ID == "" {
		return errors.InvariantViolation("character id is required")
	}
	if c.SessionID == "" {
		return errors.InvariantViolationf("character %s: session id is required", c.ID)
	}
	if _, err := ParseEmotion(string(c.Emotion)); err != nil {
		return errors.Wrapf(err, "character %s", c.ID)
	}
	if _, err := ParseTitle(string(c.Title)); err != nil {
		return errors.Wrapf(err, "character %s", c.ID)
	}
	return nil
}
