package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/coursebay/coursebay/cli/internal/config"
	"github.com/coursebay/coursebay/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a coursebay configuration interactively",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("Coursebay setup", "choose the database backend")

	var backend string
	prompt := &survey.Select{
		Message: "Which backend should this installation use?",
		Options: []string{"embedded (SQLite file)", "networked (PostgreSQL)"},
		Default: "embedded (SQLite file)",
	}
	if err := survey.AskOne(prompt, &backend); err != nil {
		return err
	}

	cfg := &config.Config{DatabasePath: "coursebay.db"}

	if backend == "networked (PostgreSQL)" {
		var url string
		if err := survey.AskOne(&survey.Input{
			Message: "PostgreSQL connection URL:",
			Default: "postgres://localhost:5432/coursebay?sslmode=disable",
		}, &url, survey.WithValidator(survey.Required)); err != nil {
			return err
		}

		// The URL selects the backend at startup, so it lives in .env
		// rather than the config file.
		env := fmt.Sprintf("DATABASE_URL=%s\n", url)
		if err := afero.WriteFile(config.AppFs, ".env", []byte(env), 0600); err != nil {
			return fmt.Errorf("failed to write .env: %w", err)
		}
		ui.PrintSuccess("wrote .env")
	} else {
		var path string
		if err := survey.AskOne(&survey.Input{
			Message: "Database file path:",
			Default: cfg.DatabasePath,
		}, &path); err != nil {
			return err
		}
		if path != "" {
			cfg.DatabasePath = path
		}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	ui.PrintSuccess("configuration saved")
	ui.PrintInfo("run `coursebay db init` to create the schema")
	return nil
}
