package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// Global configuration instance
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Get returns the global configuration instance
// If the configuration has not been initialized, it will return an error
func Get() (*Config, error) {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	return globalConfig, nil
}

// Set sets the global configuration instance
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = cfg
}

// Config represents the complete application configuration.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	GitHub  GitHubConfig
	Claude  ClaudeConfig
	Logging LoggingConfig
}

// GitHubConfig represents GitHub-specific configuration
type GitHubConfig struct {
	Token          string        // GitHub Personal Access Token
	APIURL         string        // GitHub API base URL
	RequestTimeout time.Duration // Request timeout for GitHub API
}

// ClaudeConfig holds Claude API configuration
type ClaudeConfig struct {
	APIKey     string        // Claude API key
	BaseURL    string        // Claude API base URL
	APIVersion string        // API version to use
	Model      string        // Claude model to use
	MaxTokens  int           // Max tokens to generate for review responses
	Timeout    time.Duration // Request timeout
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // stdout, stderr, or file path
	AddSource  bool   // Include source code position in logs
	TimeFormat string // Time format for logs (empty uses RFC3339)
}

// New returns a new empty Config
func New() *Config {
	return &Config{
		GitHub:  GitHubConfig{},
		Claude:  ClaudeConfig{},
		Logging: LoggingConfig{},
	}
}

// Validate checks if the configuration is valid and fills in defaults
// for unset optional values. Missing credentials are not an error here:
// operations that need them fail descriptively at call time instead.
func (c *Config) Validate() error {
	if err := c.validateGitHub(); err != nil {
		return fmt.Errorf("GitHub config: %w", err)
	}

	if err := c.validateClaude(); err != nil {
		return fmt.Errorf("Claude config: %w", err)
	}

	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// ParseLogLevel parses a log level string to a slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		// Set to a very high level that won't be triggered
		return slog.Level(9999)
	default:
		return slog.LevelInfo
	}
}

func (c *Config) validateGitHub() error {
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = "https://api.github.com"
	}

	if c.GitHub.RequestTimeout <= 0 {
		c.GitHub.RequestTimeout = 30 * time.Second
	}

	return nil
}

func (c *Config) validateClaude() error {
	if c.Claude.BaseURL == "" {
		c.Claude.BaseURL = "https://api.anthropic.com"
	}

	if c.Claude.APIVersion == "" {
		c.Claude.APIVersion = "2023-06-01"
	}

	if c.Claude.Model == "" {
		c.Claude.Model = "claude-3-sonnet-20240229"
	}

	if c.Claude.MaxTokens <= 0 {
		c.Claude.MaxTokens = 4000
	}

	if c.Claude.Timeout <= 0 {
		c.Claude.Timeout = 120 * time.Second
	}

	return nil
}

func (c *Config) validateLogging() error {
	level := strings.ToLower(c.Logging.Level)
	if level != "debug" && level != "info" && level != "warn" && level != "error" && level != "none" {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	format := strings.ToLower(c.Logging.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// getEnvString returns a string from the environment variable
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an int from the environment variable
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns a bool from the environment variable
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration returns a time.Duration from the environment variable
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
