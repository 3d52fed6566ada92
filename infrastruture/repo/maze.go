package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record in the repository.
// Generation never rewrites a maze, so an update only happens when the same
// record is saved again.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"width":     record.Width,
			"height":    record.Height,
			"seed":      record.Seed,
			"startX":    record.StartX,
			"startY":    record.StartY,
			"cellCount": record.CellCount,
			"rendered":  record.Rendered,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns an error if the record is not found or if an unexpected error occurs.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maze not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
