// Package narrator generates the prose that accompanies each decision
package narrator

//go:generate mockgen -destination=mock/mock_client.go -package=narratormock github.com/KirkDiggler/rpg-saga/internal/clients/narrator Client

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
)

// Client defines the interface for text generation.
// Narrative text is cosmetic; callers recover from any error.
type Client interface {
	// Generate writes prose for a transition following the instruction prompt
	// Returns errors.Unavailable when the backend cannot be reached
	// Returns errors.DeadlineExceeded when ctx expires first
	Generate(ctx context.Context, nc engine.NarrativeContext, prompt string) (*Narrative, error)

	// IsAvailable probes the backend without generating anything
	IsAvailable(ctx context.Context) bool
}

// Narrative is generated prose. TokenCount is zero when the backend does not report it.
type Narrative struct {
	Text        string
	GeneratedAt time.Time
	TokenCount  int
}
