// Package domain holds the persisted models of the maze generator.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is a generated maze: the parameters that produced it plus its
// textual render. The render is the only stored representation of the maze
// itself; together with the seed and start coordinate it is enough to
// reproduce the maze exactly.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Seed      int64     `bson:"seed" json:"seed"`
	StartX    int       `bson:"startX" json:"start_x"`
	StartY    int       `bson:"startY" json:"start_y"`
	CellCount int       `bson:"cellCount" json:"cell_count"`
	Rendered  string    `bson:"rendered" json:"rendered"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
