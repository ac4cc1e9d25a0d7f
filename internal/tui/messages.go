package tui

import (
	"github.com/tildaslashalef/prmind/internal/github"
	"github.com/tildaslashalef/prmind/internal/review"
)

// invalidURLMsg is a message for when the submitted URL does not match the
// pull request URL shape. The prompt is shown again with a warning.
type invalidURLMsg struct {
	url string
}

// prFetchedMsg is a message for when pull request data has been fetched
type prFetchedMsg struct {
	ref   github.PullRequestRef
	data  *github.PullRequestData
	error error
}

// reviewMsg is a message for when review generation finished. A non-nil
// error does not discard the already fetched pull request data.
type reviewMsg struct {
	review *review.Review
	error  error
}
