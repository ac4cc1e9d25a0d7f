package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/prmind/internal/app"
	"github.com/tildaslashalef/prmind/internal/commands"
)

// Version information - populated at build time
var (
	Version    = "dev"
	BuildTime  = "unknown"
	CommitHash = "unknown"
)

func main() {
	cliApp := &cli.App{
		Name:  "prmind",
		Usage: "AI-powered GitHub pull request reviewer",
		Description: "PRMind fetches a GitHub pull request, builds a review prompt from its\n" +
			"metadata and diffs, and asks Claude for a code review.\n\n" +
			"When run without subcommands, PRMind performs a review (default action).",
		Version: Version,
		Compiled: func() time.Time {
			t, err := time.Parse(time.RFC3339, BuildTime)
			if err != nil {
				return time.Now()
			}
			return t
		}(),
		Before: func(c *cli.Context) error {
			application, err := app.New()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			// Store the app instance in the context for later use
			c.App.Metadata = map[string]interface{}{
				"app": application,
			}

			return nil
		},
		After: func(c *cli.Context) error {
			if app, ok := c.App.Metadata["app"].(*app.App); ok {
				return app.Shutdown()
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.ReviewCommand(),
		},
		Action: func(c *cli.Context) error {
			// Default action is to run the review command
			return commands.ReviewCommand().Action(c)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
