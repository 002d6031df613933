package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// EventBuilder builds canonical events
type EventBuilder struct {
	event entities.CanonicalEvent
}

// NewEventBuilder starts from a key moment in the first era
func NewEventBuilder(id string) *EventBuilder {
	return &EventBuilder{
		event: entities.CanonicalEvent{
			ID:                 id,
			Title:              "Event " + id,
			Description:        "Something happens at " + id,
			Era:                entities.EraAwakening,
			ChronologicalOrder: 1,
			IsKeyMoment:        true,
		},
	}
}

// WithOrder sets the chronological order
func (b *EventBuilder) WithOrder(order int) *EventBuilder {
	b.event.ChronologicalOrder = order
	return b
}

// WithEra sets the era
func (b *EventBuilder) WithEra(era entities.Era) *EventBuilder {
	b.event.Era = era
	return b
}

// Requires sets the prerequisite event
func (b *EventBuilder) Requires(id string) *EventBuilder {
	b.event.RequiredPreviousEventID = id
	return b
}

// Optional clears the key moment flag
func (b *EventBuilder) Optional() *EventBuilder {
	b.event.IsKeyMoment = false
	return b
}

// Build returns the event
func (b *EventBuilder) Build() entities.CanonicalEvent {
	return b.event
}

// Decision builds a decision for eventID with the given deltas
func Decision(id, eventID string, alignment entities.Alignment, light, dark int, emotion entities.Emotion) entities.Decision {
	return entities.Decision{
		ID:        id,
		EventID:   eventID,
		Text:      fmt.Sprintf("Choose %s", id),
		Alignment: alignment,
		Impact: entities.DecisionImpact{
			LightSideDelta:   light,
			DarkSideDelta:    dark,
			ResultingEmotion: emotion,
		},
		NarrativeContext: "context for " + id,
		DisplayOrder:     1,
	}
}

// Chain builds n key-moment events where each requires the one before it
func Chain(n int) []entities.CanonicalEvent {
	events := make([]entities.CanonicalEvent, 0, n)
	prev := ""
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("event_%d", i)
		events = append(events, NewEventBuilder(id).WithOrder(i).Requires(prev).Build())
		prev = id
	}
	return events
}
