package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/tildaslashalef/prmind/internal/app"
	"github.com/tildaslashalef/prmind/internal/github"
	"github.com/tildaslashalef/prmind/internal/review"
)

// Model represents the TUI model state.
// It holds all the necessary data for the UI.
type Model struct {
	app     *app.App
	ctx     context.Context
	cancel  context.CancelFunc
	options Options
	status  Status
	width   int
	height  int

	// Pipeline results
	ref       github.PullRequestRef
	data      *github.PullRequestData
	review    *review.Review
	reviewErr error // generation failure; details stay visible

	// Viewing state
	pane      Pane
	fileIndex int
	expanded  map[int]bool

	errorMsg      string
	statusMessage string
	styles        Styles

	// Components from bubbletea/bubbles
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	showHelp bool

	// Markdown rendering
	renderer *glamour.TermRenderer

	// Viewport readiness flag
	ready bool
}

// NewModel creates a new TUI model with initial state.
func NewModel(application *app.App, options Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	h := help.New()
	h.ShowAll = false

	styles := DefaultStyles()
	s.Style = styles.Spinner

	ti := textinput.New()
	ti.Placeholder = "https://github.com/owner/repo/pull/123"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)

	ctx, cancel := context.WithCancel(context.Background())

	vp := viewport.New(10, 10)
	vp.Style = styles.Paragraph

	status := StatusInput
	if options.URL != "" {
		status = StatusFetching
	}

	return Model{
		app:      application,
		ctx:      ctx,
		cancel:   cancel,
		options:  options,
		status:   status,
		pane:     PaneDetails,
		expanded: map[int]bool{},
		spinner:  s,
		help:     h,
		showHelp: false,
		styles:   styles,
		input:    ti,
		renderer: r,
		viewport: vp,
		ready:    false,
	}
}
