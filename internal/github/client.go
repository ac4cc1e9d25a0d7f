package github

import (
	"context"

	"github.com/google/go-github/v59/github"
	"github.com/tildaslashalef/prmind/internal/config"
	"golang.org/x/oauth2"
)

// filesPerPage is the page size requested from the files endpoint. Only the
// first page is fetched; see Client.GetPullRequestFiles.
const filesPerPage = 100

// Client represents a GitHub API client
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client from config. An empty token
// produces an unauthenticated client; requests then fail at call time with
// the status code the API returns.
func NewClient(cfg config.GitHubConfig) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)

	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = cfg.RequestTimeout

	// Custom base URL is used for GitHub Enterprise and for tests
	var client *github.Client
	if cfg.APIURL != "" && cfg.APIURL != "https://api.github.com" {
		var err error
		client, err = github.NewClient(tc).WithEnterpriseURLs(cfg.APIURL, cfg.APIURL)
		if err != nil {
			client = github.NewClient(tc)
		}
	} else {
		client = github.NewClient(tc)
	}

	return &Client{
		client: client,
	}
}

// GetPullRequest gets a pull request by number
func (c *Client) GetPullRequest(ctx context.Context, ref PullRequestRef) (*github.PullRequest, *github.Response, error) {
	return c.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
}

// GetPullRequestFiles gets the changed files of a pull request.
//
// Only the first page (up to filesPerPage entries) is returned. Pull
// requests with more changed files than that have the remainder silently
// omitted from the review; this mirrors the API default rather than
// walking the pagination links.
func (c *Client) GetPullRequestFiles(ctx context.Context, ref PullRequestRef) ([]*github.CommitFile, *github.Response, error) {
	opts := &github.ListOptions{PerPage: filesPerPage}
	return c.client.PullRequests.ListFiles(ctx, ref.Owner, ref.Repo, ref.Number, opts)
}
