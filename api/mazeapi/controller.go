package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze generation and retrieval over HTTP.
type MazeController struct {
	generator i.Generator
}

// NewMazeController initializes a MazeController.
func NewMazeController(generator i.Generator) (*MazeController, error) {
	if generator == nil {
		return nil, errors.New("nil generator")
	}
	return &MazeController{
		generator: generator,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/rendered", mc.rendered)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	record, err := mc.generator.Generate(timeoutCtx, request.MaxWidth, request.MaxHeight, request.Seed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID retrieves a previously generated maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	record, err := mc.generator.ByID(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// rendered serves a maze's textual drawing as plain text.
func (mc *MazeController) rendered(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	rendered, err := mc.generator.Rendered(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
		return
	}

	ctx.String(http.StatusOK, "%s", rendered)
}
