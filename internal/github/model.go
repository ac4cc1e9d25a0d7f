package github

import (
	"time"
)

// FileStatus is the change status GitHub reports for a file in a pull request.
type FileStatus string

const (
	FileStatusAdded    FileStatus = "added"
	FileStatusRemoved  FileStatus = "removed"
	FileStatusModified FileStatus = "modified"
	FileStatusRenamed  FileStatus = "renamed"
)

// PullRequestRef identifies a pull request by owner, repository and number.
// It is produced by ParsePullRequestURL and never mutated afterwards.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

// PullRequestMetadata holds the pull request fields the review pipeline
// consumes. Body is optional and empty when the PR has no description.
type PullRequestMetadata struct {
	Title     string
	Author    string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Body      string
}

// FileChange describes one changed file in a pull request.
// Patch is empty when the file was removed, or when the diff is binary or
// too large for the API to return.
type FileChange struct {
	Filename  string
	Status    FileStatus
	Additions int
	Deletions int
	Patch     string
}

// HasPatch reports whether the API returned diff text for this file.
func (f FileChange) HasPatch() bool {
	return f.Patch != ""
}

// PullRequestData combines the metadata and changed files of one pull
// request. Files keep the order the API returned them in.
type PullRequestData struct {
	Metadata PullRequestMetadata
	Files    []FileChange
}

// TotalAdditions returns the number of added lines across all files.
func (d *PullRequestData) TotalAdditions() int {
	var total int
	for _, f := range d.Files {
		total += f.Additions
	}
	return total
}

// TotalDeletions returns the number of deleted lines across all files.
func (d *PullRequestData) TotalDeletions() int {
	var total int
	for _, f := range d.Files {
		total += f.Deletions
	}
	return total
}
