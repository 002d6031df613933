// Package content stores the canonical events and the decisions offered at them
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/rpg-saga/internal/repositories/content Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Repository defines the interface for canonical content.
// Content is written only by Seed; reads never mutate it.
type Repository interface {
	// GetEvent retrieves a canonical event by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the event doesn't exist
	// Returns errors.Internal for storage failures
	GetEvent(ctx context.Context, input GetEventInput) (*GetEventOutput, error)

	// ListEvents returns every event in chronological order
	// Returns errors.Internal for storage failures
	ListEvents(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error)

	// ListDecisionsForEvent returns an event's decisions in display order.
	// An unknown event yields an empty list.
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	ListDecisionsForEvent(ctx context.Context, input ListDecisionsForEventInput) (*ListDecisionsForEventOutput, error)

	// GetDecision retrieves a decision by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the decision doesn't exist
	// Returns errors.Internal for storage failures
	GetDecision(ctx context.Context, input GetDecisionInput) (*GetDecisionOutput, error)

	// Seed replaces all stored content with the catalog
	// Returns errors.InvalidArgument if the catalog is nil or invalid
	// Returns errors.Internal for storage failures
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)
}

// GetEventInput defines the input for getting an event
type GetEventInput struct {
	ID string
}

// GetEventOutput defines the output for getting an event
type GetEventOutput struct {
	Event entities.CanonicalEvent
}

// ListEventsInput defines the input for listing events
type ListEventsInput struct{}

// ListEventsOutput defines the output for listing events
type ListEventsOutput struct {
	Events []entities.CanonicalEvent
}

// ListDecisionsForEventInput defines the input for listing an event's decisions
type ListDecisionsForEventInput struct {
	EventID string
}

// ListDecisionsForEventOutput defines the output for listing an event's decisions
type ListDecisionsForEventOutput struct {
	Decisions []entities.Decision
}

// GetDecisionInput defines the input for getting a decision
type GetDecisionInput struct {
	ID string
}

// GetDecisionOutput defines the output for getting a decision
type GetDecisionOutput struct {
	Decision entities.Decision
}

// SeedInput defines the input for seeding content
type SeedInput struct {
	Catalog *Catalog
}

// SeedOutput reports how much content was written
type SeedOutput struct {
	Events    int
	Decisions int
}
