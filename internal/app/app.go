// Package app provides the application initialization and lifecycle management
package app

import (
	"fmt"

	"github.com/tildaslashalef/prmind/internal/config"
	"github.com/tildaslashalef/prmind/internal/github"
	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/review"
	"github.com/urfave/cli/v2"
)

// App represents the application instance with its dependencies
type App struct {
	Config *config.Config
	GitHub *github.Service
	Review *review.Service
}

// New initializes a new application instance with all its dependencies
func New() (*App, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}

	// Missing credentials are a warning at startup, not a hard failure:
	// operations needing them fail with a descriptive message at call time.
	if cfg.GitHub.Token == "" {
		loggy.Warn("No GitHub token configured; set PRMIND_GITHUB_TOKEN or GITHUB_TOKEN")
	}
	if cfg.Claude.APIKey == "" {
		loggy.Warn("No Claude API key configured; set PRMIND_CLAUDE_API_KEY or ANTHROPIC_API_KEY")
	}

	logger := loggy.GetGlobalLogger()

	app := &App{
		Config: cfg,
		GitHub: github.NewService(cfg.GitHub, logger),
		Review: review.NewService(cfg.Claude, logger),
	}

	loggy.Info("Application initialized",
		"github_api", cfg.GitHub.APIURL,
		"model", cfg.Claude.Model)

	return app, nil
}

// initConfig loads and sets up the application configuration
func initConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv("")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	config.Set(cfg)
	return cfg, nil
}

// initLogger initializes the logging system
func initLogger(cfg *config.Config) error {
	err := loggy.Init(loggy.Config{
		Level:      config.ParseLogLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	loggy.Debug("Application shutdown")
	return nil
}

// FromContext retrieves the App instance from the CLI context
func FromContext(c *cli.Context) (*App, error) {
	if c.App.Metadata == nil {
		return nil, fmt.Errorf("app metadata not found in context")
	}

	app, ok := c.App.Metadata["app"].(*App)
	if !ok {
		return nil, fmt.Errorf("app instance not found in context")
	}

	return app, nil
}
