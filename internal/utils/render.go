// Package utils contains terminal rendering helpers for the plain
// (non-interactive) output mode.
package utils

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tildaslashalef/prmind/internal/github"
)

// Theme - semantic colors for consistent plain-mode output
var Theme = struct {
	Success text.Colors
	Info    text.Colors
	Warning text.Colors
	Error   text.Colors
	Heading text.Colors
	Subtle  text.Colors
}{
	Success: text.Colors{text.FgGreen},
	Info:    text.Colors{text.FgBlue},
	Warning: text.Colors{text.FgYellow},
	Error:   text.Colors{text.FgRed},
	Heading: text.Colors{text.FgHiCyan, text.Bold},
	Subtle:  text.Colors{text.FgHiBlack},
}

var (
	headingPrinter = color.New(color.FgHiCyan, color.Bold)
	warnPrinter    = color.New(color.FgYellow)
	errorPrinter   = color.New(color.FgRed, color.Bold)
)

// Heading writes a section heading.
func Heading(w io.Writer, format string, args ...any) {
	headingPrinter.Fprintf(w, format+"\n", args...)
}

// Warnf writes a warning line.
func Warnf(w io.Writer, format string, args ...any) {
	warnPrinter.Fprintf(w, format+"\n", args...)
}

// Errorf writes an error line.
func Errorf(w io.Writer, format string, args ...any) {
	errorPrinter.Fprintf(w, format+"\n", args...)
}

// RenderFileTable renders the changed files of a pull request as a table,
// in fetch order, with a totals footer.
func RenderFileTable(data *github.PullRequestData) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Color.Header = Theme.Heading
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"File", "Status", "Additions", "Deletions"})
	for _, f := range data.Files {
		t.AppendRow(table.Row{f.Filename, string(f.Status), f.Additions, f.Deletions})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(data.Files)),
		"",
		data.TotalAdditions(),
		data.TotalDeletions(),
	})

	return t.Render()
}
