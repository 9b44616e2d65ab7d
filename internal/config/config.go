// Package config loads runtime configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DataDir is where the file-backed store keeps its JSON documents.
	DataDir string

	// DatabaseURL, when set, selects the Postgres document store instead
	// of the file store.
	DatabaseURL string

	// LogLevel controls logger verbosity (debug, info, warn, error).
	LogLevel string

	// LoginRateLimit is the number of login attempts allowed per minute
	// per client IP.
	LoginRateLimit int
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	rateLimit, err := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "5"))
	if err != nil || rateLimit < 1 {
		rateLimit = 5
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LoginRateLimit: rateLimit,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
