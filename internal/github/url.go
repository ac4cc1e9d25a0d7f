package github

import (
	"regexp"
	"strconv"
)

// pullRequestURLPattern matches canonical pull request URLs. The match is
// anchored at the start only: no normalization of case, trailing slashes or
// query strings is performed.
var pullRequestURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)`)

// ParsePullRequestURL extracts the owner, repository and PR number from a
// pull request URL. The second return value is false when the string does
// not match the expected format; that is a validation outcome, not an error.
func ParsePullRequestURL(url string) (PullRequestRef, bool) {
	m := pullRequestURLPattern.FindStringSubmatch(url)
	if m == nil {
		return PullRequestRef{}, false
	}

	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return PullRequestRef{}, false
	}

	return PullRequestRef{
		Owner:  m[1],
		Repo:   m[2],
		Number: number,
	}, true
}
