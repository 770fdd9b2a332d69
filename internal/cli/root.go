// Package cli provides the superagent command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/marketing-super-agent/internal/observability"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "superagent",
	Short: "Marketing super agent",
	Long: `superagent routes marketing requests to specialist agents and plays
their scripted responses in the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// logs go to stderr so they never mix with command output
		observability.SetLogger(observability.New(logLevel, logFormat, cmd.ErrOrStderr()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

func Execute() error {
	return rootCmd.Execute()
}
