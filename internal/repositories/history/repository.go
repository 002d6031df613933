// Package history provides the append-only log of processed decisions
package history

//go:generate mockgen -destination=mock/mock_repository.go -package=historymock github.com/KirkDiggler/rpg-saga/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Repository defines the interface for decision record persistence.
// Records are never updated or removed once appended.
type Repository interface {
	// Append adds a record and marks its event completed for the session
	// Returns errors.InvalidArgument for missing identifiers
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// ListBySession returns a session's records in the order they were appended
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.Internal for storage failures
	ListBySession(ctx context.Context, input ListBySessionInput) (*ListBySessionOutput, error)

	// CompletedEventIDs returns the distinct event IDs a session has decided, sorted
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.Internal for storage failures
	CompletedEventIDs(ctx context.Context, input CompletedEventIDsInput) (*CompletedEventIDsOutput, error)
}

// AppendInput defines the input for appending a record
type AppendInput struct {
	Record entities.UserDecisionRecord
}

// AppendOutput defines the output for appending a record
type AppendOutput struct {
	Record entities.UserDecisionRecord
}

// ListBySessionInput defines the input for listing a session's records
type ListBySessionInput struct {
	SessionID string
}

// ListBySessionOutput defines the output for listing a session's records
type ListBySessionOutput struct {
	Records []entities.UserDecisionRecord
}

// CompletedEventIDsInput defines the input for reading the completed set
type CompletedEventIDsInput struct {
	SessionID string
}

// CompletedEventIDsOutput defines the output for reading the completed set
type CompletedEventIDsOutput struct {
	EventIDs []string
}
