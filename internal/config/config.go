package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string

	// RateLimit is the per-client request budget in requests per second.
	RateLimit float64
}

// Load reads the environment and fails hard when a required variable is
// missing, so a misconfigured deployment dies at startup instead of at the
// first request.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "social"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RateLimit: getEnvAsFloat("RATE_LIMIT", 20),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("config: MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
