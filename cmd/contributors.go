package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
)

// contributorsCmd performs per-contributor analysis.
var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Show the top contributors and their work patterns.",
	Long: `Walk the full commit history and rank contributors by commit count.

Each contributor's timestamps are classified into a work pattern:
- ☀️  day_worker: primarily commits during business hours (9 AM - 6 PM)
- 🌙 moonlighter: commits mostly evenings, nights and weekends
- ⚖️  mixed: balanced between day and night work
- ❓ unknown: fewer than 5 commits, not enough signal

Examples:
  # Analyze the current directory
  gitpulse contributors

  # Analyze a remote repository
  gitpulse contributors --url https://github.com/spf13/cobra

  # Full record set as JSON
  gitpulse contributors --json

  # Export contributor records for tracking
  gitpulse contributors --parquet contributors.parquet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run contributors analysis", err)
		}
	},
}
