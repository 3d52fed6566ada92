package i

import (
	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze record persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	Save(record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns an error if the record is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
}
