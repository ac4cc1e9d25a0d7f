package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tildaslashalef/prmind/internal/github"
)

func TestRenderFileTable(t *testing.T) {
	data := &github.PullRequestData{
		Files: []github.FileChange{
			{Filename: "widget.go", Status: github.FileStatusAdded, Additions: 120},
			{Filename: "legacy.go", Status: github.FileStatusRemoved, Deletions: 80},
		},
	}

	out := RenderFileTable(data)

	assert.Contains(t, out, "widget.go")
	assert.Contains(t, out, "legacy.go")
	assert.Contains(t, out, "added")
	assert.Contains(t, out, "removed")
	assert.Contains(t, out, "2 files")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "80")
}

func TestRenderFileTableEmpty(t *testing.T) {
	out := RenderFileTable(&github.PullRequestData{})
	assert.Contains(t, out, "0 files")
}
