package main

import (
	"os"

	"github.com/coursebay/coursebay/cli/commands"
	"github.com/coursebay/coursebay/cli/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}
