package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/physics"
)

type Config struct {
	// Environment
	Environment string
	LogLevel    string

	// Server
	Port           string
	StoreDriver    string // "memory" or "postgres"
	MigrateOnStart bool

	// Database
	DatabaseURL string

	// Redis (optional history cache)
	RedisURL        string
	HistoryCacheTTL time.Duration

	// Client
	APIURL string

	// Physics
	Gravity           float64
	SingularTolerance float64

	// Viewport used to place the anchors
	ViewportWidth  int
	ViewportHeight int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Server
		Port:           getEnv("APP_PORT", "5000"),
		StoreDriver:    getEnv("STORE_DRIVER", "memory"),
		MigrateOnStart: getEnv("MIGRATE_ON_START", "false") == "true",

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/gocable?sslmode=disable"),

		// Redis
		RedisURL:        getEnv("REDIS_URL", ""),
		HistoryCacheTTL: time.Duration(getEnvInt("HISTORY_CACHE_TTL_SECONDS", 30)) * time.Second,

		// Client
		APIURL: getEnv("API_URL", "http://localhost:5000"),

		// Physics
		Gravity:           getEnvFloat("GRAVITY", physics.StandardGravity),
		SingularTolerance: getEnvFloat("SINGULAR_TOLERANCE", physics.DefaultSingularTolerance),

		// Viewport
		ViewportWidth:  getEnvInt("VIEWPORT_WIDTH", physics.DefaultViewportWidth),
		ViewportHeight: getEnvInt("VIEWPORT_HEIGHT", physics.DefaultViewportHeight),
	}
}

// Solver returns the immutable solver configuration
func (c *Config) Solver() equilibrium.Config {
	return equilibrium.Config{
		Gravity:           c.Gravity,
		SingularTolerance: c.SingularTolerance,
	}
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
