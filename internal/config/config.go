package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL points at StatsBomb's public open-data repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// SourceConfig holds upstream open-data configuration
type SourceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig holds response cache configuration.
// RedisURL selects the Redis backend when set; otherwise responses are
// cached as JSON files under Dir.
type CacheConfig struct {
	Dir      string
	TTL      time.Duration
	RedisURL string
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Source SourceConfig
	Cache  CacheConfig
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Source: SourceConfig{
			BaseURL: getEnv("STATSBOMB_BASE_URL", DefaultBaseURL),
			Timeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Cache: CacheConfig{
			Dir:      getEnv("CACHE_DIR", "cache"),
			TTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
			RedisURL: getEnv("REDIS_URL", ""),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
