package ports

import (
	"context"

	"github.com/chalklab/chalkline/pkg/domain"
)

// StateStore defines the interface for persisting learner sessions.
// Traces are never stored; they are recomputed from the session inputs,
// which is safe because solves are deterministic.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.SessionState) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
