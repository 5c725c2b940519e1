package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks the port, upstream URL and log level. The API key is
// not checked; an empty key surfaces as upstream auth failures.
func ValidateConfig(cfg *Config) error {
	var errors []string

	port, err := strconv.Atoi(cfg.ServerPort)
	if err != nil || port < 1 || port > 65535 {
		errors = append(errors, ValidationError{Field: "PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	u, err := url.Parse(cfg.SpoonacularBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{Field: "SPOONACULAR_BASE_URL", Message: fmt.Sprintf("invalid URL %q", cfg.SpoonacularBaseURL)}.Error())
	}

	if !validLogLevels[cfg.LogLevel] {
		errors = append(errors, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
