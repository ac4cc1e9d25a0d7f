// Package commands defines the CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/prmind/internal/app"
	"github.com/tildaslashalef/prmind/internal/github"
	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/review"
	"github.com/tildaslashalef/prmind/internal/tui"
	"github.com/tildaslashalef/prmind/internal/utils"
)

// ReviewCommand returns the CLI command for reviewing a pull request
func ReviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "review",
		Usage:     "Fetch a GitHub pull request and generate an AI review",
		ArgsUsage: "[pull request URL]",
		Description: "Fetches the pull request metadata and changed files, builds a review\n" +
			"prompt and asks Claude for a review. Without --plain an interactive\n" +
			"terminal interface is started; the URL argument is then optional.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Print results to stdout instead of starting the interactive interface",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Claude model to use for this review",
			},
		},
		Action: reviewAction,
	}
}

// reviewAction is the main action function for the review command
func reviewAction(c *cli.Context) error {
	application, err := app.FromContext(c)
	if err != nil {
		return err
	}

	url := c.Args().First()
	model := c.String("model")

	if c.Bool("plain") {
		if url == "" {
			return fmt.Errorf("a pull request URL argument is required with --plain")
		}
		return runPlain(c, application, url, model)
	}

	loggy.Info("Starting TUI mode")

	tuiService := tui.NewService(application)
	return tuiService.Run(tui.Options{
		URL:   url,
		Model: model,
	})
}

// runPlain executes the review pipeline once and prints the results.
func runPlain(c *cli.Context, application *app.App, url string, model string) error {
	ref, ok := github.ParsePullRequestURL(url)
	if !ok {
		return fmt.Errorf("invalid GitHub pull request URL: %s", url)
	}

	data, err := application.GitHub.FetchPullRequest(c.Context, ref)
	if err != nil {
		return err
	}

	meta := data.Metadata
	utils.Heading(os.Stdout, "%s/%s#%d: %s", ref.Owner, ref.Repo, ref.Number, meta.Title)
	fmt.Printf("Author:  %s\n", meta.Author)
	fmt.Printf("State:   %s\n", meta.State)
	fmt.Printf("Created: %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated: %s\n", meta.UpdatedAt.Format("2006-01-02 15:04:05"))

	description := meta.Body
	if description == "" {
		description = review.NoDescriptionPlaceholder
	}
	fmt.Printf("\n%s\n\n", description)

	fmt.Println(utils.RenderFileTable(data))
	fmt.Println()

	document, err := review.FormatPullRequest(data)
	if err != nil {
		return err
	}

	rev, err := application.Review.GenerateReviewWithModel(c.Context, document, model)
	if err != nil {
		// Partial success: the pull request details above stay printed.
		utils.Errorf(os.Stderr, "Review generation failed: %v", err)
		return err
	}

	utils.Heading(os.Stdout, "Review")
	if rev.Model != "" {
		fmt.Printf("Model: %s (tokens: %d in / %d out)\n\n", rev.Model, rev.InputTokens, rev.OutputTokens)
	}

	rendered, err := renderMarkdown(rev.Text)
	if err != nil {
		loggy.Warn("Failed to render review markdown", "error", err)
		rendered = rev.Text
	}
	fmt.Println(rendered)

	return nil
}

// renderMarkdown renders markdown for terminal output.
func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
