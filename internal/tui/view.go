package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/review"
)

// View renders the UI based on the model's current state.
func (m Model) View() string {
	if !m.ready {
		return "Initializing...\n"
	}

	var mainContent string
	var footer string

	switch m.status {
	case StatusInput:
		mainContent = m.renderInputView()
	case StatusFetching, StatusGenerating:
		mainContent = m.renderLoadingView()
	case StatusViewing:
		mainContent = m.renderResultView()
	case StatusError:
		mainContent = m.renderErrorView()
	default:
		mainContent = "Unknown status"
	}

	if m.showHelp {
		footer = m.help.View(Keys)
	} else {
		footer = m.help.ShortHelpView(Keys.ShortHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		mainContent,
		footer,
	)
}

// renderInputView displays the URL prompt.
func (m Model) renderInputView() string {
	var b strings.Builder

	b.WriteString(renderBanner(m.styles))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Title.Render("Enter a GitHub pull request URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Press enter to fetch, '?' for help, 'q' to quit."))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		b.String(),
	)
}

// renderLoadingView displays progress during fetch and generation.
func (m Model) renderLoadingView() string {
	status := m.styles.StatusText.Render(m.statusMessage)
	spinner := m.spinner.View()

	content := lipgloss.JoinVertical(lipgloss.Center,
		renderBanner(m.styles),
		"\n",
		spinner+" "+status,
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderResultView displays the fetched pull request and the review
// behind a tabbed header.
func (m Model) renderResultView() string {
	header := m.renderResultHeader()
	tabs := m.renderTabs()
	body := m.viewport.View()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		tabs,
		body,
	)
}

// renderErrorView displays an error message.
func (m Model) renderErrorView() string {
	errorTitle := m.styles.Error.Render("Error")
	errorBody := m.styles.Paragraph.Render(wordwrap.String(m.errorMsg, m.width-4))
	quitMsg := m.styles.Subtle.Render("Press 'u' to try another URL, 'q' to quit.")

	content := lipgloss.JoinVertical(lipgloss.Center,
		errorTitle,
		"\n",
		errorBody,
		"\n",
		quitMsg,
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderBanner renders the application title/banner.
func renderBanner(styles Styles) string {
	banner := `
██████╗ ██████╗ ███╗   ███╗██╗███╗   ██╗██████╗
██╔══██╗██╔══██╗████╗ ████║██║████╗  ██║██╔══██╗
██████╔╝██████╔╝██╔████╔██║██║██╔██╗ ██║██║  ██║
██╔═══╝ ██╔══██╗██║╚██╔╝██║██║██║╚██╗██║██║  ██║
██║     ██║  ██║██║ ╚═╝ ██║██║██║ ╚████║██████╔╝
╚═╝     ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝
`

	return styles.Banner.Render(banner)
}

// renderResultHeader renders the pull request reference line.
func (m Model) renderResultHeader() string {
	if m.data == nil {
		return m.styles.Header.Render("Pull Request")
	}

	refInfo := fmt.Sprintf("%s/%s#%d", m.ref.Owner, m.ref.Repo, m.ref.Number)
	title := m.data.Metadata.Title

	left := m.styles.Header.Render(refInfo)
	right := m.styles.Header.Render(title)

	spacerWidth := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Left, left, spacer, right)
}

// renderTabs renders the pane selector line.
func (m Model) renderTabs() string {
	labels := []string{"Details", "Review", "Diffs"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if Pane(i) == m.pane {
			rendered[i] = m.styles.ActiveTab.Render(label)
		} else {
			rendered[i] = m.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, rendered...)
}

// renderPaneContent prepares the viewport content for the focused pane.
func (m Model) renderPaneContent() string {
	switch m.pane {
	case PaneDetails:
		return m.renderDetailsContent()
	case PaneReview:
		return m.renderReviewContent()
	case PaneDiffs:
		return m.renderDiffsContent()
	default:
		return ""
	}
}

// renderDetailsContent shows pull request metadata and the changed files.
func (m Model) renderDetailsContent() string {
	if m.data == nil {
		return m.styles.Subtle.Render("No pull request loaded.")
	}

	meta := m.data.Metadata
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(meta.Title))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Author:  %s\n", meta.Author))
	sb.WriteString(fmt.Sprintf("State:   %s\n", meta.State))
	sb.WriteString(fmt.Sprintf("Created: %s\n", meta.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", meta.UpdatedAt.Format(time.RFC3339)))
	sb.WriteString("\n")

	description := meta.Body
	if description == "" {
		description = review.NoDescriptionPlaceholder
	}
	sb.WriteString(m.styles.Paragraph.Render(wordwrap.String(description, m.viewport.Width-2)))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Files Changed (%d)", len(m.data.Files))))
	sb.WriteString("\n\n")
	for _, f := range m.data.Files {
		additions := m.styles.DiffAdd.Render(fmt.Sprintf("+%d", f.Additions))
		deletions := m.styles.DiffDel.Render(fmt.Sprintf("-%d", f.Deletions))
		sb.WriteString(fmt.Sprintf("  %s  %s %s  %s\n",
			f.Filename, additions, deletions, m.styles.Subtle.Render(string(f.Status))))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Total: +%d -%d",
		m.data.TotalAdditions(), m.data.TotalDeletions())))

	if m.reviewErr != nil {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Error.Render("Review generation failed: " + m.reviewErr.Error()))
	}

	return sb.String()
}

// renderReviewContent shows the generated review as rendered markdown.
func (m Model) renderReviewContent() string {
	if m.reviewErr != nil {
		return m.styles.Error.Render("Review generation failed: " + m.reviewErr.Error())
	}
	if m.review == nil {
		return m.styles.Subtle.Render("No review available.")
	}

	text := m.review.Text
	if m.renderer != nil {
		rendered, err := m.renderer.Render(text)
		if err == nil {
			text = rendered
		} else {
			loggy.Warn("Failed to render review markdown", "error", err)
			text = wordwrap.String(text, m.viewport.Width-2)
		}
	}

	var sb strings.Builder
	if m.review.Model != "" {
		sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Model: %s  Tokens: %d in / %d out",
			m.review.Model, m.review.InputTokens, m.review.OutputTokens)))
		sb.WriteString("\n")
	}
	sb.WriteString(text)

	return sb.String()
}

// renderDiffsContent shows the per-file diff browser.
func (m Model) renderDiffsContent() string {
	if m.data == nil || len(m.data.Files) == 0 {
		return m.styles.Subtle.Render("No changed files.")
	}

	file := m.data.Files[m.fileIndex]
	var sb strings.Builder

	position := fmt.Sprintf("File %d/%d", m.fileIndex+1, len(m.data.Files))
	sb.WriteString(m.styles.Title.Render(file.Filename))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Subtle.Render(position))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s  %s %s\n\n",
		m.styles.Subtle.Render(string(file.Status)),
		m.styles.DiffAdd.Render(fmt.Sprintf("+%d", file.Additions)),
		m.styles.DiffDel.Render(fmt.Sprintf("-%d", file.Deletions))))

	if !m.expanded[m.fileIndex] {
		sb.WriteString(m.styles.Subtle.Render("Press 'e' to expand the diff, 'n'/'p' to change file."))
		return sb.String()
	}

	if !file.HasPatch() {
		sb.WriteString(m.styles.Subtle.Render("No diff available for this file."))
		return sb.String()
	}

	for _, line := range strings.Split(file.Patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			sb.WriteString(m.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(m.styles.DiffDel.Render(line))
		default:
			sb.WriteString(m.styles.Paragraph.Render(line))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
