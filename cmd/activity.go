package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
)

// activityCmd performs time-bucketed activity analysis.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show commit activity bucketed by month and by hour.",
	Long: `Walk the full commit history and bucket commits across all
contributors into monthly counts and an hour-of-day histogram.

Examples:
  # Monthly counts plus an hourly bar chart
  gitpulse activity

  # Machine-readable buckets
  gitpulse activity --json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run activity analysis", err)
		}
	},
}
