package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
)

// filesCmd performs file modification-frequency analysis.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Show the most modified files across the full history.",
	Long: `Walk the full commit history, diff each commit against its first
parent, and rank files by the number of commits that touched them.

Renames are not followed: a file renamed mid-history appears as two
independent paths. The initial commit's file set is never counted since a
root commit has no parent to diff against.

Examples:
  # Top modified files with last-modified timestamps
  gitpulse files

  # Full record set as JSON
  gitpulse files --json

  # Export file records for tracking
  gitpulse files --parquet files.parquet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFiles(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run files analysis", err)
		}
	},
}
