// Package builders provides fluent fixtures for journey entities
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// FixedTime is the timestamp fixtures use unless told otherwise
var FixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// CharacterBuilder builds test characters
type CharacterBuilder struct {
	char entities.Character
}

// NewCharacterBuilder starts from a fresh protagonist for session_test
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		char: entities.NewProtagonist("char_test", "session_test", "", FixedTime),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.char.ID = id
	return b
}

// WithSessionID sets the owning session
func (b *CharacterBuilder) WithSessionID(id string) *CharacterBuilder {
	b.char.SessionID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.char.Name = name
	return b
}

// WithMoral sets both moral axes
func (b *CharacterBuilder) WithMoral(light, dark int) *CharacterBuilder {
	b.char.MoralState = entities.NewMoralState(light, dark)
	return b
}

// WithEmotion sets the current emotion
func (b *CharacterBuilder) WithEmotion(e entities.Emotion) *CharacterBuilder {
	b.char.Emotion = e
	return b
}

// WithTitle sets the current title
func (b *CharacterBuilder) WithTitle(t entities.Title) *CharacterBuilder {
	b.char.Title = t
	return b
}

// WithVersion sets the stored version
func (b *CharacterBuilder) WithVersion(v int64) *CharacterBuilder {
	b.char.Version = v
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() entities.Character {
	return b.char
}
