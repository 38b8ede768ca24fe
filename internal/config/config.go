package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration, sourced from the environment.
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string

	// RedisAddr is the Redis host:port
	RedisAddr string

	// RedisPassword is the Redis password, empty for none
	RedisPassword string

	// AppID namespaces the user collection
	AppID string

	// GeminiBaseURL overrides the generateContent endpoint
	GeminiBaseURL string

	// GeminiAPIKey authenticates generateContent calls
	GeminiAPIKey string

	// GeminiTimeout bounds each generation call
	GeminiTimeout time.Duration
}

// Load reads configuration from the environment, first loading a .env
// file when one is present.
func Load() *Config {
	// A missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		AppID:         getEnv("APP_ID", "chugline"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiTimeout: getDurationEnv("GEMINI_TIMEOUT", 15*time.Second),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDurationEnv gets a duration environment variable or returns a
// default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
