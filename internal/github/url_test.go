package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePullRequestURL(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		expected PullRequestRef
		ok       bool
	}{
		{
			name:     "canonical URL",
			url:      "https://github.com/golang/go/pull/12345",
			expected: PullRequestRef{Owner: "golang", Repo: "go", Number: 12345},
			ok:       true,
		},
		{
			name:     "trailing path segment",
			url:      "https://github.com/golang/go/pull/42/files",
			expected: PullRequestRef{Owner: "golang", Repo: "go", Number: 42},
			ok:       true,
		},
		{
			name:     "query string after number",
			url:      "https://github.com/golang/go/pull/42?diff=split",
			expected: PullRequestRef{Owner: "golang", Repo: "go", Number: 42},
			ok:       true,
		},
		{
			name:     "repo with dots and dashes",
			url:      "https://github.com/some-org/repo.name/pull/7",
			expected: PullRequestRef{Owner: "some-org", Repo: "repo.name", Number: 7},
			ok:       true,
		},
		{
			name: "http scheme rejected",
			url:  "http://github.com/golang/go/pull/42",
		},
		{
			name: "uppercase host rejected",
			url:  "https://GitHub.com/golang/go/pull/42",
		},
		{
			name: "issue URL rejected",
			url:  "https://github.com/golang/go/issues/42",
		},
		{
			name: "missing number rejected",
			url:  "https://github.com/golang/go/pull/",
		},
		{
			name: "non-numeric number rejected",
			url:  "https://github.com/golang/go/pull/abc",
		},
		{
			name: "leading whitespace rejected",
			url:  " https://github.com/golang/go/pull/42",
		},
		{
			name: "empty string rejected",
			url:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, ok := ParsePullRequestURL(tc.url)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, ref)
			} else {
				assert.Equal(t, PullRequestRef{}, ref)
			}
		})
	}
}
