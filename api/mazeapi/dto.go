// Package mazeapi provides structures and utilities for generating and
// serving mazes over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze. All fields
// are optional: zero dimensions fall back to the configured defaults and a
// zero seed is time-derived.
type GenerateRequest struct {
	MaxWidth  int   `json:"max_width" binding:"omitempty,min=1"`
	MaxHeight int   `json:"max_height" binding:"omitempty,min=1"`
	Seed      int64 `json:"seed"`
}

// MazeResponse represents a generated maze and the parameters that
// reproduce it.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	StartX    int       `json:"start_x"`
	StartY    int       `json:"start_y"`
	CellCount int       `json:"cell_count"`
	Rendered  string    `json:"rendered"`
	CreatedAt time.Time `json:"created_at"`
}

// newMazeResponse maps a maze record to its response form.
func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID,
		Width:     record.Width,
		Height:    record.Height,
		Seed:      record.Seed,
		StartX:    record.StartX,
		StartY:    record.StartY,
		CellCount: record.CellCount,
		Rendered:  record.Rendered,
		CreatedAt: record.CreatedAt,
	}
}
