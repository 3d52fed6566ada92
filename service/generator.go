// Package service holds the application services around the maze core.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/maze"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service/i"
	"github.com/google/uuid"
)

const (
	defaultWidth  = 30
	defaultHeight = 30
)

var (
	// ErrInvalidDimensions is returned when a requested maze dimension is negative.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
)

// Options holds optional settings for the maze generator service.
type Options struct {
	DefaultWidth  int // Used when a request leaves the width at zero
	DefaultHeight int // Used when a request leaves the height at zero
}

// Generator carves mazes, persists their records and warms the render cache.
type Generator struct {
	repo   i.MazeRepo
	cache  i.RenderCache
	logger i.Logger
	opts   *Options
}

// NewGenerator creates a maze generator service.
func NewGenerator(repo i.MazeRepo, cache i.RenderCache, logger i.Logger, opts *Options) (i.Generator, error) {
	if repo == nil {
		return nil, errors.New("nil maze repository")
	}
	if cache == nil {
		return nil, errors.New("nil render cache")
	}
	if logger == nil {
		return nil, errors.New("nil logger")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.DefaultWidth <= 0 {
		opts.DefaultWidth = defaultWidth
	}
	if opts.DefaultHeight <= 0 {
		opts.DefaultHeight = defaultHeight
	}

	return &Generator{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate carves a new maze and persists its record. A zero width or
// height falls back to the configured default; negative values are
// rejected. A zero seed is replaced with a time-derived one, and the seed
// actually used is stored so the maze stays reproducible.
func (g *Generator) Generate(ctx context.Context, width, height int, seed int64) (*dmn.MazeRecord, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if width == 0 {
		width = g.opts.DefaultWidth
	}
	if height == 0 {
		height = g.opts.DefaultHeight
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	record, err := Carve(width, height, seed)
	if err != nil {
		return nil, err
	}

	if err := g.repo.Save(record); err != nil {
		g.logger.Error(fmt.Sprintf("Saving maze record: %s", err))
		return nil, err
	}
	if err := g.cache.Set(ctx, record.ID, record.Rendered); err != nil {
		// The repo holds the render too, so a cold cache only costs a lookup.
		g.logger.Warning(fmt.Sprintf("Warming render cache: %s", err))
	}

	g.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Seed=%d", record.ID, width, height, seed))
	return record, nil
}

// ByID retrieves a maze record from the repository.
func (g *Generator) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return g.repo.ByID(id)
}

// Rendered retrieves the textual render of a maze, preferring the render
// cache and falling back to the repository on a miss.
func (g *Generator) Rendered(ctx context.Context, id uuid.UUID) (string, error) {
	if rendered, err := g.cache.Get(ctx, id); err == nil {
		return rendered, nil
	}

	record, err := g.repo.ByID(id)
	if err != nil {
		return "", err
	}
	if err := g.cache.Set(ctx, id, record.Rendered); err != nil {
		g.logger.Warning(fmt.Sprintf("Re-warming render cache: %s", err))
	}
	return record.Rendered, nil
}

// Carve builds one maze and returns its unsaved record. The seed drives
// both the start coordinate and the carving order, so equal parameters
// yield byte-identical renders. Exposed for the print mode, which carves
// without any persistence behind it.
func Carve(width, height int, seed int64) (*dmn.MazeRecord, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	m := maze.New(width, height, rng)
	startX, startY := m.RandomPosition()
	if !m.PopulateFrom(startX, startY) {
		return nil, fmt.Errorf("populating maze from (%d, %d)", startX, startY)
	}

	return &dmn.MazeRecord{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Seed:      seed,
		StartX:    startX,
		StartY:    startY,
		CellCount: m.CellCount(),
		Rendered:  m.String(),
		CreatedAt: time.Now().UTC(),
	}, nil
}
