package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/davidjwbbc/bbc-kata3-mazegenerator/domain"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeGenerator carves real mazes but keeps records in memory.
type fakeGenerator struct {
	records map[uuid.UUID]*dmn.MazeRecord
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (f *fakeGenerator) Generate(_ context.Context, width, height int, seed int64) (*dmn.MazeRecord, error) {
	if width < 0 || height < 0 {
		return nil, service.ErrInvalidDimensions
	}
	if width == 0 {
		width = 30
	}
	if height == 0 {
		height = 30
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	record, err := service.Carve(width, height, seed)
	if err != nil {
		return nil, err
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeGenerator) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

func (f *fakeGenerator) Rendered(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := f.ByID(ctx, id)
	if err != nil {
		return "", err
	}
	return record.Rendered, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeGenerator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	generator := newFakeGenerator()
	controller, err := NewMazeController(generator)
	assert.NoError(t, err)

	router := gin.New()
	controller.Register(router.Group("/api/v1"))
	return router, generator
}

func TestGenerateEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("generates a maze from the request parameters", func(t *testing.T) {
		body, _ := json.Marshal(GenerateRequest{MaxWidth: 5, MaxHeight: 4, Seed: 77})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 5, response.Width)
		assert.Equal(t, 4, response.Height)
		assert.Equal(t, int64(77), response.Seed)
		assert.Equal(t, 20, response.CellCount)
		assert.NotEmpty(t, response.Rendered)
		assert.NotEqual(t, uuid.Nil, response.ID)
	})

	t.Run("defaults everything for an empty body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/mazes/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 30, response.Width)
		assert.Equal(t, 30, response.Height)
		assert.NotZero(t, response.Seed)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewReader([]byte(`{"max_width":-2}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewReader([]byte(`{"max_width":"five"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestByIDEndpoint(t *testing.T) {
	router, generator := setupRouter(t)
	record, err := generator.Generate(context.Background(), 6, 6, 5)
	assert.NoError(t, err)

	t.Run("returns the maze record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/mazes/"+record.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, record.ID, response.ID)
		assert.Equal(t, record.Rendered, response.Rendered)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/mazes/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404s for an unknown maze", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/mazes/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRenderedEndpoint(t *testing.T) {
	router, generator := setupRouter(t)
	record, err := generator.Generate(context.Background(), 4, 3, 8)
	assert.NoError(t, err)

	t.Run("serves the drawing as plain text", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/mazes/"+record.ID.String()+"/rendered", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, record.Rendered, w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("404s for an unknown maze", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/mazes/"+uuid.New().String()+"/rendered", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
