package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the TUI model. When a URL was supplied on the command
// line the fetch starts immediately, otherwise the URL prompt is shown.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}

	if m.options.URL != "" {
		cmds = append(cmds, submitURL(m, m.options.URL))
	} else {
		cmds = append(cmds, m.input.Focus())
	}

	return tea.Batch(cmds...)
}
