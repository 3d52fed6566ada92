package i

import (
	"context"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/google/uuid"
)

// Generator produces and serves maze records.
type Generator interface {
	// Generate carves a new maze with the given maximum dimensions and
	// random seed (0 means time-derived) and persists its record.
	Generate(ctx context.Context, width, height int, seed int64) (*dmn.MazeRecord, error)

	// ByID retrieves a previously generated maze record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Rendered retrieves the textual render of a previously generated
	// maze, served from the render cache when possible.
	Rendered(ctx context.Context, id uuid.UUID) (string, error)
}
