package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitpulse/gitpulse/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitpulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to run repository analyses via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The protocol runs over stdio, so the analyses must not print
		// anything there; tools return JSON payloads instead.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
