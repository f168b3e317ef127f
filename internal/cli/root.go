// Package cli provides the command-line interface for logstats.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logstats/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		// SilenceErrors stops cobra from printing it.
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logstats",
		Short: "Summarize web server access logs",
		Long: `logstats reads access logs in the combined log format from files, glob
patterns or http(s) URLs and prints summary tables:

  - Overall information
  - The most popular resources and statuses
  - The most highloaded days
  - The most active users

Settings come from an optional YAML file (--config), LOGSTATS_* environment
variables and command-line flags, later ones taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
