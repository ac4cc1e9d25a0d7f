package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tildaslashalef/prmind/internal/github"
	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/review"
)

// submitURL parses the entered URL and fetches the pull request.
// It returns a command that sends an invalidURLMsg or a prFetchedMsg.
func submitURL(m Model, url string) tea.Cmd {
	return func() tea.Msg {
		ref, ok := github.ParsePullRequestURL(url)
		if !ok {
			loggy.Warn("Invalid pull request URL submitted", "url", url)
			return invalidURLMsg{url: url}
		}

		loggy.Info("Fetching pull request",
			"owner", ref.Owner, "repo", ref.Repo, "number", ref.Number)

		data, err := m.app.GitHub.FetchPullRequest(m.ctx, ref)
		return prFetchedMsg{ref: ref, data: data, error: err}
	}
}

// generateReview formats the fetched pull request and requests a review.
// A generation failure is carried in the reviewMsg so the already fetched
// details remain on screen.
func generateReview(m Model) tea.Cmd {
	return func() tea.Msg {
		document, err := review.FormatPullRequest(m.data)
		if err != nil {
			return reviewMsg{error: err}
		}

		rev, err := m.app.Review.GenerateReviewWithModel(m.ctx, document, m.options.Model)
		return reviewMsg{review: rev, error: err}
	}
}
