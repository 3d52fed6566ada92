package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/davidjwbbc/bbc-kata3-mazegenerator/api"
	api_i "github.com/davidjwbbc/bbc-kata3-mazegenerator/api/i"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/api/mazeapi"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/config"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/infrastruture/rendercache"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/infrastruture/repo"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/logger"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service"
	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	renderCache    i.RenderCache
	mazeGenerator  i.Generator
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRenderCache() {
	var err error
	renderCache, err = rendercache.NewRedisRenderCache(redisClient, config.Envs.CacheTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating render cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Render cache initialized")
}

func initGenerator() {
	generatorLogger, err := logger.New("GENERATOR", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}

	mazeGenerator, err = service.NewGenerator(mazeRepo, renderCache, generatorLogger, &service.Options{
		DefaultWidth:  config.Envs.MazeWidth,
		DefaultHeight: config.Envs.MazeHeight,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Generator service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// printMaze carves a single maze and writes it to standard output, without
// any storage behind it: `mazegen print [width [height]]`. Missing
// dimensions fall back to the configured defaults.
func printMaze(args []string) int {
	width := config.Envs.MazeWidth
	height := config.Envs.MazeHeight

	var err error
	if len(args) > 0 {
		if width, err = strconv.Atoi(args[0]); err != nil {
			appLogger.Error(fmt.Sprintf("Width must be an integer: %v", err))
			return 1
		}
	}
	if len(args) > 1 {
		if height, err = strconv.Atoi(args[1]); err != nil {
			appLogger.Error(fmt.Sprintf("Height must be an integer: %v", err))
			return 1
		}
	}

	record, err := service.Carve(width, height, time.Now().UnixNano())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Carving maze: %v", err))
		return 1
	}

	fmt.Print(record.Rendered)
	return 0
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if len(os.Args) > 1 && os.Args[1] == "print" {
		os.Exit(printMaze(os.Args[2:]))
	}

	// Initialize dependencies
	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initRenderCache()
	initGenerator()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
