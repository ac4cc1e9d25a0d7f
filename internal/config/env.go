package config

import (
	"time"

	"github.com/joho/godotenv"
)

// LoadFromEnv loads configuration from environment variables.
// When envFilePath is non-empty it is loaded first via godotenv; otherwise
// a .env file in the current directory is used if present. Real environment
// variables always win over .env entries.
func LoadFromEnv(envFilePath string) (*Config, error) {
	cfg := New()

	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, err
		}
	} else {
		// Best effort: a missing .env file is fine
		_ = godotenv.Load()
	}

	// GitHub configuration. The bare GITHUB_TOKEN name is honored as a
	// fallback since it is the conventional variable for the hosting API.
	cfg.GitHub = GitHubConfig{
		Token:          getEnvString("PRMIND_GITHUB_TOKEN", getEnvString("GITHUB_TOKEN", "")),
		APIURL:         getEnvString("PRMIND_GITHUB_API_URL", "https://api.github.com"),
		RequestTimeout: getEnvDuration("PRMIND_GITHUB_REQUEST_TIMEOUT", 30*time.Second),
	}

	// Claude configuration, with the conventional ANTHROPIC_API_KEY fallback.
	cfg.Claude = ClaudeConfig{
		APIKey:     getEnvString("PRMIND_CLAUDE_API_KEY", getEnvString("ANTHROPIC_API_KEY", "")),
		BaseURL:    getEnvString("PRMIND_CLAUDE_BASE_URL", "https://api.anthropic.com"),
		APIVersion: getEnvString("PRMIND_CLAUDE_API_VERSION", "2023-06-01"),
		Model:      getEnvString("PRMIND_CLAUDE_MODEL", "claude-3-sonnet-20240229"),
		MaxTokens:  getEnvInt("PRMIND_CLAUDE_MAX_TOKENS", 4000),
		Timeout:    getEnvDuration("PRMIND_CLAUDE_TIMEOUT", 120*time.Second),
	}

	// Logging configuration
	cfg.Logging = LoggingConfig{
		Level:      getEnvString("PRMIND_LOG_LEVEL", "info"),
		Format:     getEnvString("PRMIND_LOG_FORMAT", "text"),
		Output:     getEnvString("PRMIND_LOG_OUTPUT", "stderr"),
		AddSource:  getEnvBool("PRMIND_LOG_ADD_SOURCE", false),
		TimeFormat: getEnvString("PRMIND_LOG_TIME_FORMAT", time.RFC3339),
	}

	return cfg, cfg.Validate()
}
