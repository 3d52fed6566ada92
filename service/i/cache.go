package i

import (
	"context"

	"github.com/google/uuid"
)

// RenderCache caches rendered maze text keyed by maze ID, with expiry.
type RenderCache interface {
	// Set stores the rendered text for a maze.
	Set(ctx context.Context, id uuid.UUID, rendered string) error

	// Get retrieves the rendered text for a maze.
	// Returns an error on a cache miss.
	Get(ctx context.Context, id uuid.UUID) (string, error)
}
