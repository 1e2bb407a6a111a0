package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursebay/coursebay/cli/internal/update"
)

// Version is the CLI version, overridable at build time with -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("coursebay version %s\n", Version)
		return update.Check(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
