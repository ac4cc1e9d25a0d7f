package tui

// Status represents the current status of the TUI
type Status int

const (
	// StatusInput is the status when waiting for a pull request URL
	StatusInput Status = iota
	// StatusFetching is the status while pull request data is being fetched
	StatusFetching
	// StatusGenerating is the status while the review is being generated
	StatusGenerating
	// StatusViewing is the status when displaying results
	StatusViewing
	// StatusError is the status when an error occurred
	StatusError
)

// Pane identifies which result pane is focused in the viewing state
type Pane int

const (
	// PaneDetails shows pull request metadata and the changed files summary
	PaneDetails Pane = iota
	// PaneReview shows the generated review
	PaneReview
	// PaneDiffs shows per-file diffs with expand/collapse
	PaneDiffs
)

// Options contains options for running the TUI
type Options struct {
	// URL is an optional pull request URL; when set the fetch starts
	// immediately instead of prompting for input.
	URL string
	// Model overrides the configured Claude model when non-empty.
	Model string
}
