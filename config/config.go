package config

import (
	"os"
	"strings"
)

const (
	// DefaultServerPort matches the port the frontend expects in development
	DefaultServerPort = "3000"
	// DefaultSpoonacularBaseURL is the public Spoonacular API
	DefaultSpoonacularBaseURL = "https://api.spoonacular.com"
	// DefaultLogLevel is used when LOG_LEVEL is unset
	DefaultLogLevel = "info"
)

// Config holds all configuration for the gateway. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Upstream configuration
	SpoonacularAPIKey  string
	SpoonacularBaseURL string

	// Logging configuration
	LogLevel string
	LogFile  string

	Env Environment
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("PORT", DefaultServerPort),
		ServerHost:         os.Getenv("SERVER_HOST"),
		SpoonacularAPIKey:  strings.TrimSpace(os.Getenv("SPOONACULAR_API_KEY")),
		SpoonacularBaseURL: strings.TrimRight(getEnv("SPOONACULAR_BASE_URL", DefaultSpoonacularBaseURL), "/"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFile:            os.Getenv("LOG_FILE"),
		Env:                GetEnvironment(),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// HasAPIKey reports whether an upstream credential was configured
func (c *Config) HasAPIKey() bool {
	return c.SpoonacularAPIKey != ""
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
