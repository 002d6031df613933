// Package character provides persistence for session protagonists
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-saga/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Repository defines the interface for character persistence.
// Every character belongs to exactly one session.
type Repository interface {
	// Create stores a new character and binds it to its session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the character or the session already has one
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySession retrieves the character bound to a session
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.NotFound if the session has no character
	// Returns errors.Internal for storage failures
	GetBySession(ctx context.Context, input GetBySessionInput) (*GetBySessionOutput, error)

	// Save replaces the stored character when its Version matches the stored one.
	// The saved copy carries Version+1.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted if another writer saved first
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character entities.Character
}

// GetBySessionInput defines the input for getting a session's character
type GetBySessionInput struct {
	SessionID string
}

// GetBySessionOutput defines the output for getting a session's character
type GetBySessionOutput struct {
	Character entities.Character
}

// SaveInput defines the input for saving a character.
// Character.Version must be the version that was loaded.
type SaveInput struct {
	Character entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character entities.Character
}
