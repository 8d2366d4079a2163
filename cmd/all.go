package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
)

// allCmd runs every analysis in sequence against one resolved repository.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the contributors, activity and files analyses in sequence.",
	Long: `Resolve the repository once (cloning it if --url is given), then run
the contributors, activity and files analyses against the same path. A
failure in an earlier analysis stops the rest.

Examples:
  # Everything about the current directory
  gitpulse all

  # Everything about a remote repository, as JSON
  gitpulse all --url https://github.com/spf13/cobra --json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAll(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run all analyses", err)
		}
	},
}
