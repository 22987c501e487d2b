package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the tooling around the AI library
type Config struct {
	Redis   RedisConfig
	Content ContentConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string // Optional: empty falls back to the content file
	Password string
	DB       int
}

// ContentConfig holds static content configuration
type ContentConfig struct {
	Path string // yaml file with the spell and range tables
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Content: ContentConfig{
			Path: getEnvOrDefault("CONTENT_PATH", "data/spells.yaml"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
