// Package tui implements the interactive terminal interface for fetching
// a pull request and viewing its generated review.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tildaslashalef/prmind/internal/app"
)

// Service is the main service for the TUI
type Service struct {
	app *app.App
}

// NewService creates a new TUI service
func NewService(application *app.App) *Service {
	return &Service{
		app: application,
	}
}

// Run starts the TUI with the given options.
func (s *Service) Run(options Options) error {
	model := NewModel(s.app, options)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
