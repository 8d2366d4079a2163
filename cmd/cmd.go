// Package cmd defines the command-line interface for gitpulse.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitpulse/gitpulse/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("path", "p", ".", "Path to the Git repository")
	rootCmd.PersistentFlags().StringP("url", "u", "", "Remote repository URL to clone and analyze instead of --path")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Emit results as pretty-printed JSON")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("parquet", "", "Optional path to additionally export records as Parquet (contributors and files)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
