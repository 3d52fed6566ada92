package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type memRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *memRepo) Save(record *dmn.MazeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *memRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

type memCache struct {
	rendered map[uuid.UUID]string
}

func newMemCache() *memCache {
	return &memCache{rendered: make(map[uuid.UUID]string)}
}

func (c *memCache) Set(_ context.Context, id uuid.UUID, rendered string) error {
	c.rendered[id] = rendered
	return nil
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (string, error) {
	rendered, ok := c.rendered[id]
	if !ok {
		return "", errors.New("cache miss")
	}
	return rendered, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func TestNewGenerator(t *testing.T) {
	repo := newMemRepo()
	cache := newMemCache()

	t.Run("rejects nil dependencies", func(t *testing.T) {
		_, err := NewGenerator(nil, cache, nopLogger{}, nil)
		assert.Error(t, err)
		_, err = NewGenerator(repo, nil, nopLogger{}, nil)
		assert.Error(t, err)
		_, err = NewGenerator(repo, cache, nil, nil)
		assert.Error(t, err)
	})

	t.Run("accepts nil options", func(t *testing.T) {
		svc, err := NewGenerator(repo, cache, nopLogger{}, nil)
		assert.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerate(t *testing.T) {
	repo := newMemRepo()
	cache := newMemCache()
	svc, err := NewGenerator(repo, cache, nopLogger{}, &Options{DefaultWidth: 6, DefaultHeight: 4})
	assert.NoError(t, err)

	t.Run("persists and caches the carved maze", func(t *testing.T) {
		record, err := svc.Generate(context.Background(), 8, 5, 42)
		assert.NoError(t, err)
		assert.Equal(t, 8, record.Width)
		assert.Equal(t, 5, record.Height)
		assert.Equal(t, int64(42), record.Seed)
		assert.Equal(t, 40, record.CellCount)
		assert.NotEmpty(t, record.Rendered)

		saved, err := repo.ByID(record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.Rendered, saved.Rendered)

		cached, err := cache.Get(context.Background(), record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.Rendered, cached)
	})

	t.Run("falls back to default dimensions", func(t *testing.T) {
		record, err := svc.Generate(context.Background(), 0, 0, 1)
		assert.NoError(t, err)
		assert.Equal(t, 6, record.Width)
		assert.Equal(t, 4, record.Height)
		assert.Equal(t, 24, record.CellCount)
	})

	t.Run("derives a seed when left at zero", func(t *testing.T) {
		record, err := svc.Generate(context.Background(), 3, 3, 0)
		assert.NoError(t, err)
		assert.NotZero(t, record.Seed)
	})

	t.Run("rejects negative dimensions", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), -1, 5, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = svc.Generate(context.Background(), 5, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestCarve(t *testing.T) {
	t.Run("same parameters reproduce the same maze", func(t *testing.T) {
		a, err := Carve(10, 7, 1234)
		assert.NoError(t, err)
		b, err := Carve(10, 7, 1234)
		assert.NoError(t, err)

		assert.Equal(t, a.Rendered, b.Rendered)
		assert.Equal(t, a.StartX, b.StartX)
		assert.Equal(t, a.StartY, b.StartY)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := Carve(0, 7, 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestRendered(t *testing.T) {
	repo := newMemRepo()
	cache := newMemCache()
	svc, err := NewGenerator(repo, cache, nopLogger{}, nil)
	assert.NoError(t, err)

	record, err := svc.Generate(context.Background(), 4, 4, 9)
	assert.NoError(t, err)

	t.Run("serves the cached render", func(t *testing.T) {
		// Poison the cache to prove the repo is not consulted on a hit.
		assert.NoError(t, cache.Set(context.Background(), record.ID, "cached"))
		rendered, err := svc.Rendered(context.Background(), record.ID)
		assert.NoError(t, err)
		assert.Equal(t, "cached", rendered)
	})

	t.Run("falls back to the repository and re-warms the cache", func(t *testing.T) {
		delete(cache.rendered, record.ID)
		rendered, err := svc.Rendered(context.Background(), record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.Rendered, rendered)

		cached, err := cache.Get(context.Background(), record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.Rendered, cached)
	})

	t.Run("fails for an unknown maze", func(t *testing.T) {
		_, err := svc.Rendered(context.Background(), uuid.New())
		assert.Error(t, err)
	})
}
