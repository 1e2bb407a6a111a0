// Package commands implements the coursebay CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/coursebay/coursebay/internal/debug"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "coursebay",
	Short: "Coursebay platform database toolkit",
	Long: `Manage the coursebay platform database.

The same commands work against either backend: the embedded SQLite file
used by default, or PostgreSQL when DATABASE_URL is set in the
environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
