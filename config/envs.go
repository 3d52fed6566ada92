package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	RedisHost     string // Hostname or IP address for the render cache
	RedisPort     int    // Port number for the render cache
	RedisPassword string // Password for the render cache
	CacheTTL      int    // Render cache expiry in seconds
	MazeWidth     int    // Default maximum maze width
	MazeHeight    int    // Default maximum maze height
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file. Every key has a default
// so the print mode runs without any environment at all.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvWithDefaultAsInt("REST_PORT", 8080),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		DBHost:        getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:        getEnvWithDefaultAsInt("DB_PORT", 27017),
		DBUser:        getEnvWithDefault("DB_USER", "root"),
		DBPassword:    getEnvWithDefault("DB_PASS", ""),
		DBName:        getEnvWithDefault("DB_NAME", "mazegen"),
		RedisHost:     getEnvWithDefault("REDIS_HOST", "localhost"),
		RedisPort:     getEnvWithDefaultAsInt("REDIS_PORT", 6379),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),
		CacheTTL:      getEnvWithDefaultAsInt("CACHE_TTL_SECONDS", 3600),
		MazeWidth:     getEnvWithDefaultAsInt("MAZE_WIDTH", 30),
		MazeHeight:    getEnvWithDefaultAsInt("MAZE_HEIGHT", 30),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvWithDefaultAsInt retrieves the value of an environment variable as an integer or returns a
// default value if not set. A value that cannot be parsed is a fatal error.
func getEnvWithDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
