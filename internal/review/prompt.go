package review

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/go-enry/go-enry/v2"
	"github.com/tildaslashalef/prmind/internal/github"
)

// Templates for building the prompt document
const headerTemplate = `## Pull Request Information
**Title:** {{.Title}}
**Author:** {{.Author}}
**State:** {{.State}}
**Created:** {{.Created}}
**Updated:** {{.Updated}}

**Description:**
{{.Description}}

## Files Changed ({{.FileCount}} files):
`

const fileTemplate = `
### {{.Filename}}{{if .Language}} ({{.Language}}){{end}}
- **Status:** {{.Status}}
- **Additions:** {{.Additions}}, **Deletions:** {{.Deletions}}
{{if .Patch}}
**Changes:**
` + "```diff\n{{.Patch}}\n```" + `
{{end}}`

const instructionTemplate = `Please review this GitHub Pull Request and provide:

1. **Summary**: A brief overview of what this PR does
2. **Code Quality**: Assessment of code quality, patterns, and best practices
3. **Potential Issues**: Any bugs, security concerns, or problems you identify
4. **Suggestions**: Recommendations for improvements
5. **Overall Assessment**: Your overall recommendation (Approve, Request Changes, Comment)

Here's the PR data:

{{.Document}}`

// NoDescriptionPlaceholder is rendered when a pull request has no body.
const NoDescriptionPlaceholder = "No description provided"

// FormatPullRequest renders pull request data into the text document sent
// to the model. It is a pure function: files appear in fetch order, and a
// diff block is emitted only when the file was not removed and the API
// returned patch text. No size limit is enforced here; an oversized
// document surfaces as a generation error downstream.
func FormatPullRequest(data *github.PullRequestData) (string, error) {
	headerTmpl, err := template.New("header").Parse(headerTemplate)
	if err != nil {
		return "", err
	}

	description := data.Metadata.Body
	if description == "" {
		description = NoDescriptionPlaceholder
	}

	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, map[string]any{
		"Title":       data.Metadata.Title,
		"Author":      data.Metadata.Author,
		"State":       data.Metadata.State,
		"Created":     data.Metadata.CreatedAt.Format(time.RFC3339),
		"Updated":     data.Metadata.UpdatedAt.Format(time.RFC3339),
		"Description": description,
		"FileCount":   len(data.Files),
	}); err != nil {
		return "", err
	}

	fileTmpl, err := template.New("file").Parse(fileTemplate)
	if err != nil {
		return "", err
	}

	for _, file := range data.Files {
		patch := file.Patch
		if file.Status == github.FileStatusRemoved {
			patch = ""
		}

		if err := fileTmpl.Execute(&buf, map[string]any{
			"Filename":  file.Filename,
			"Language":  fileLanguage(file.Filename),
			"Status":    string(file.Status),
			"Additions": file.Additions,
			"Deletions": file.Deletions,
			"Patch":     patch,
		}); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// BuildReviewPrompt wraps the formatted document in the fixed review
// instruction demanding the five assessment sections.
func BuildReviewPrompt(document string) (string, error) {
	tmpl, err := template.New("instruction").Parse(instructionTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{
		"Document": document,
	}); err != nil {
		return "", fmt.Errorf("building review prompt: %w", err)
	}

	return buf.String(), nil
}

// fileLanguage returns the language detected from the filename, or an
// empty string when detection is inconclusive.
func fileLanguage(filename string) string {
	lang, safe := enry.GetLanguageByExtension(filename)
	if !safe {
		return ""
	}
	return lang
}
