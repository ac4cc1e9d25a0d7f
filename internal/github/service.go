// Package github fetches pull request data from the GitHub REST API and
// maps it into the typed records the review pipeline consumes.
package github

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v59/github"
	"github.com/tildaslashalef/prmind/internal/config"
	"github.com/tildaslashalef/prmind/internal/loggy"
)

// Service provides pull request retrieval
type Service struct {
	client *Client
	logger *loggy.Logger
}

// NewService creates a new GitHub service
func NewService(cfg config.GitHubConfig, logger *loggy.Logger) *Service {
	return &Service{
		client: NewClient(cfg),
		logger: logger,
	}
}

// FetchPullRequest retrieves the metadata and changed files of a pull
// request. The two calls are made sequentially; a metadata failure
// short-circuits before the files request. Errors embed the HTTP status
// code when one is available. No retries are attempted.
func (s *Service) FetchPullRequest(ctx context.Context, ref PullRequestRef) (*PullRequestData, error) {
	s.logger.Debug("Fetching pull request",
		"owner", ref.Owner,
		"repo", ref.Repo,
		"number", ref.Number)

	pr, resp, err := s.client.GetPullRequest(ctx, ref)
	if err != nil {
		return nil, wrapAPIError("fetching pull request", resp, err)
	}

	metadata, err := mapPullRequest(pr)
	if err != nil {
		return nil, fmt.Errorf("decoding pull request response: %w", err)
	}

	rawFiles, resp, err := s.client.GetPullRequestFiles(ctx, ref)
	if err != nil {
		return nil, wrapAPIError("fetching pull request files", resp, err)
	}

	files, err := mapFiles(rawFiles)
	if err != nil {
		return nil, fmt.Errorf("decoding pull request files response: %w", err)
	}

	s.logger.Info("Fetched pull request",
		"title", metadata.Title,
		"state", metadata.State,
		"files", len(files))

	return &PullRequestData{
		Metadata: *metadata,
		Files:    files,
	}, nil
}

// wrapAPIError attaches the HTTP status code to an API error when the
// response is available.
func wrapAPIError(action string, resp *gogithub.Response, err error) error {
	if resp != nil {
		return fmt.Errorf("%s (status %d): %w", action, resp.StatusCode, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// mapPullRequest converts the raw API type into PullRequestMetadata.
// Title, author, state and the two timestamps are required; a response
// missing any of them is a decode error. Body is optional.
func mapPullRequest(pr *gogithub.PullRequest) (*PullRequestMetadata, error) {
	if pr == nil {
		return nil, fmt.Errorf("empty pull request body")
	}

	switch {
	case pr.Title == nil:
		return nil, fmt.Errorf("missing required field: title")
	case pr.User == nil || pr.User.Login == nil:
		return nil, fmt.Errorf("missing required field: user.login")
	case pr.State == nil:
		return nil, fmt.Errorf("missing required field: state")
	case pr.CreatedAt == nil:
		return nil, fmt.Errorf("missing required field: created_at")
	case pr.UpdatedAt == nil:
		return nil, fmt.Errorf("missing required field: updated_at")
	}

	return &PullRequestMetadata{
		Title:     *pr.Title,
		Author:    *pr.User.Login,
		State:     *pr.State,
		CreatedAt: pr.CreatedAt.Time,
		UpdatedAt: pr.UpdatedAt.Time,
		Body:      pr.GetBody(),
	}, nil
}

// mapFiles converts the raw file list, preserving the order the API
// returned. Filename and status are required per entry; additions,
// deletions and patch default to their zero values when absent.
func mapFiles(raw []*gogithub.CommitFile) ([]FileChange, error) {
	files := make([]FileChange, 0, len(raw))
	for i, f := range raw {
		if f == nil || f.Filename == nil {
			return nil, fmt.Errorf("file entry %d: missing required field: filename", i)
		}
		if f.Status == nil {
			return nil, fmt.Errorf("file entry %d (%s): missing required field: status", i, *f.Filename)
		}

		files = append(files, FileChange{
			Filename:  *f.Filename,
			Status:    FileStatus(*f.Status),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Patch:     f.GetPatch(),
		})
	}
	return files, nil
}
