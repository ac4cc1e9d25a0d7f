package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tildaslashalef/prmind/internal/loggy"
)

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		verticalPadding := 8 // header, tabs and footer
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalPadding
		m.ready = true
		loggy.Debug("Window resized", "width", m.width, "height", m.height)
		if m.status == StatusViewing {
			m.viewport.SetContent(m.renderPaneContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			loggy.Info("Quit key pressed, shutting down TUI")
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit

		case key.Matches(msg, Keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		// Keys specific to StatusInput
		case key.Matches(msg, Keys.Submit) && m.status == StatusInput:
			url := strings.TrimSpace(m.input.Value())
			if url == "" {
				return m, nil
			}
			m.status = StatusFetching
			m.statusMessage = "Fetching pull request..."
			cmds = append(cmds, m.spinner.Tick, submitURL(m, url))
			return m, tea.Batch(cmds...)

		// Keys specific to StatusViewing
		case key.Matches(msg, Keys.NextPane) && m.status == StatusViewing:
			m.pane = (m.pane + 1) % 3
			m.viewport.SetContent(m.renderPaneContent())
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, Keys.NextFile) && m.status == StatusViewing && m.pane == PaneDiffs:
			if m.data != nil && len(m.data.Files) > 0 {
				m.fileIndex = (m.fileIndex + 1) % len(m.data.Files)
				m.viewport.SetContent(m.renderPaneContent())
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, Keys.PrevFile) && m.status == StatusViewing && m.pane == PaneDiffs:
			if m.data != nil && len(m.data.Files) > 0 {
				m.fileIndex = (m.fileIndex - 1 + len(m.data.Files)) % len(m.data.Files)
				m.viewport.SetContent(m.renderPaneContent())
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, Keys.Toggle) && m.status == StatusViewing && m.pane == PaneDiffs:
			m.expanded[m.fileIndex] = !m.expanded[m.fileIndex]
			m.viewport.SetContent(m.renderPaneContent())
			return m, nil

		case key.Matches(msg, Keys.NewURL) && (m.status == StatusViewing || m.status == StatusError):
			// Reset the pipeline for another pull request
			m.status = StatusInput
			m.data = nil
			m.review = nil
			m.reviewErr = nil
			m.errorMsg = ""
			m.pane = PaneDetails
			m.fileIndex = 0
			m.expanded = map[int]bool{}
			m.input.SetValue("")
			cmds = append(cmds, m.input.Focus())
			return m, tea.Batch(cmds...)

		default:
			if m.status == StatusInput {
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				return m, tea.Batch(cmds...)
			}
			if m.status == StatusViewing {
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case invalidURLMsg:
		m.status = StatusInput
		m.statusMessage = fmt.Sprintf("Not a pull request URL: %s", msg.url)
		m.input.SetValue("")
		cmds = append(cmds, m.input.Focus())
		return m, tea.Batch(cmds...)

	case prFetchedMsg:
		if msg.error != nil {
			m.status = StatusError
			m.errorMsg = msg.error.Error()
			loggy.Error("Failed to fetch pull request", "error", msg.error)
			return m, nil
		}
		m.ref = msg.ref
		m.data = msg.data
		m.fileIndex = 0
		m.expanded = map[int]bool{}
		m.status = StatusGenerating
		m.statusMessage = "Generating review..."
		loggy.Info("Pull request fetched",
			"title", msg.data.Metadata.Title, "files", len(msg.data.Files))
		cmds = append(cmds, m.spinner.Tick, generateReview(m))
		return m, tea.Batch(cmds...)

	case reviewMsg:
		// The fetched details are shown even when generation failed.
		m.status = StatusViewing
		if msg.error != nil {
			m.reviewErr = msg.error
			m.pane = PaneDetails
			loggy.Error("Review generation failed", "error", msg.error)
		} else {
			m.review = msg.review
			m.pane = PaneReview
			loggy.Info("Review ready", "review_id", msg.review.ID)
		}
		m.viewport.SetContent(m.renderPaneContent())
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.status == StatusFetching || m.status == StatusGenerating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			return m, nil
		}
	}

	m.help, cmd = m.help.Update(msg)
	cmds = append(cmds, cmd)

	if m.status == StatusViewing {
		if _, ok := msg.(tea.KeyMsg); !ok {
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}
