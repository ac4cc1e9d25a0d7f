package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/prmind/internal/config"
	"github.com/tildaslashalef/prmind/internal/loggy"
)

// newTestService points a Service at a stub API server. The go-github
// client treats a custom base URL as an enterprise host, so the stub
// serves under the /api/v3/ prefix.
func newTestService(t *testing.T, handler http.Handler) (*httptest.Server, *Service) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewService(config.GitHubConfig{
		Token:          "test-token",
		APIURL:         server.URL,
		RequestTimeout: 5 * time.Second,
	}, loggy.NewNoopLogger())

	return server, svc
}

const pullResponse = `{
	"title": "Add widget support",
	"user": {"login": "octocat"},
	"state": "open",
	"created_at": "2024-01-02T03:04:05Z",
	"updated_at": "2024-01-03T04:05:06Z",
	"body": "Adds widgets."
}`

const filesResponse = `[
	{"filename": "widget.go", "status": "added", "additions": 120, "deletions": 0, "patch": "@@ -0,0 +1 @@\n+package widget"},
	{"filename": "main.go", "status": "modified", "additions": 3, "deletions": 1, "patch": "@@ -1 +1 @@\n-old\n+new"},
	{"filename": "legacy.go", "status": "removed", "additions": 0, "deletions": 80}
]`

func TestFetchPullRequest(t *testing.T) {
	ref := PullRequestRef{Owner: "octo-org", Repo: "widgets", Number: 17}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octo-org/widgets/pulls/17", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "test-token")
		fmt.Fprint(w, pullResponse)
	})
	mux.HandleFunc("/api/v3/repos/octo-org/widgets/pulls/17/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, filesResponse)
	})

	_, svc := newTestService(t, mux)

	data, err := svc.FetchPullRequest(context.Background(), ref)
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "Add widget support", data.Metadata.Title)
	assert.Equal(t, "octocat", data.Metadata.Author)
	assert.Equal(t, "open", data.Metadata.State)
	assert.Equal(t, "Adds widgets.", data.Metadata.Body)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), data.Metadata.CreatedAt)
	assert.Equal(t, time.Date(2024, 1, 3, 4, 5, 6, 0, time.UTC), data.Metadata.UpdatedAt)

	// Files keep the order the API returned
	require.Len(t, data.Files, 3)
	assert.Equal(t, "widget.go", data.Files[0].Filename)
	assert.Equal(t, FileStatusAdded, data.Files[0].Status)
	assert.Equal(t, 120, data.Files[0].Additions)
	assert.True(t, data.Files[0].HasPatch())
	assert.Equal(t, "main.go", data.Files[1].Filename)
	assert.Equal(t, "legacy.go", data.Files[2].Filename)
	assert.Equal(t, FileStatusRemoved, data.Files[2].Status)
	assert.False(t, data.Files[2].HasPatch())

	assert.Equal(t, 123, data.TotalAdditions())
	assert.Equal(t, 81, data.TotalDeletions())
}

func TestFetchPullRequestMissingBody(t *testing.T) {
	ref := PullRequestRef{Owner: "o", Repo: "r", Number: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/o/r/pulls/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"title": "t",
			"user": {"login": "u"},
			"state": "closed",
			"created_at": "2024-01-02T03:04:05Z",
			"updated_at": "2024-01-02T03:04:05Z"
		}`)
	})
	mux.HandleFunc("/api/v3/repos/o/r/pulls/1/files", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	_, svc := newTestService(t, mux)

	data, err := svc.FetchPullRequest(context.Background(), ref)
	require.NoError(t, err)
	assert.Empty(t, data.Metadata.Body)
	assert.Empty(t, data.Files)
}

func TestFetchPullRequestNotFound(t *testing.T) {
	ref := PullRequestRef{Owner: "o", Repo: "r", Number: 999}

	var filesCalled bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/o/r/pulls/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	mux.HandleFunc("/api/v3/repos/o/r/pulls/999/files", func(w http.ResponseWriter, r *http.Request) {
		filesCalled = true
	})

	_, svc := newTestService(t, mux)

	data, err := svc.FetchPullRequest(context.Background(), ref)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "fetching pull request")
	assert.Contains(t, err.Error(), "404")

	// A metadata failure short-circuits before the files request
	assert.False(t, filesCalled)
}

func TestFetchPullRequestFilesError(t *testing.T) {
	ref := PullRequestRef{Owner: "o", Repo: "r", Number: 2}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/o/r/pulls/2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pullResponse)
	})
	mux.HandleFunc("/api/v3/repos/o/r/pulls/2/files", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message": "boom"}`)
	})

	_, svc := newTestService(t, mux)

	data, err := svc.FetchPullRequest(context.Background(), ref)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "fetching pull request files")
	assert.Contains(t, err.Error(), "500")
}

func TestFetchPullRequestMissingRequiredField(t *testing.T) {
	cases := []struct {
		name     string
		response string
		missing  string
	}{
		{
			name: "missing title",
			response: `{
				"user": {"login": "u"},
				"state": "open",
				"created_at": "2024-01-02T03:04:05Z",
				"updated_at": "2024-01-02T03:04:05Z"
			}`,
			missing: "title",
		},
		{
			name: "missing user login",
			response: `{
				"title": "t",
				"state": "open",
				"created_at": "2024-01-02T03:04:05Z",
				"updated_at": "2024-01-02T03:04:05Z"
			}`,
			missing: "user.login",
		},
		{
			name: "missing state",
			response: `{
				"title": "t",
				"user": {"login": "u"},
				"created_at": "2024-01-02T03:04:05Z",
				"updated_at": "2024-01-02T03:04:05Z"
			}`,
			missing: "state",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref := PullRequestRef{Owner: "o", Repo: "r", Number: 3}

			mux := http.NewServeMux()
			mux.HandleFunc("/api/v3/repos/o/r/pulls/3", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.response)
			})

			_, svc := newTestService(t, mux)

			data, err := svc.FetchPullRequest(context.Background(), ref)
			require.Error(t, err)
			assert.Nil(t, data)
			assert.Contains(t, err.Error(), "missing required field: "+tc.missing)
		})
	}
}

func TestFetchPullRequestFileMissingStatus(t *testing.T) {
	ref := PullRequestRef{Owner: "o", Repo: "r", Number: 4}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/o/r/pulls/4", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pullResponse)
	})
	mux.HandleFunc("/api/v3/repos/o/r/pulls/4/files", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"filename": "a.go"}]`)
	})

	_, svc := newTestService(t, mux)

	data, err := svc.FetchPullRequest(context.Background(), ref)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "missing required field: status")
}
