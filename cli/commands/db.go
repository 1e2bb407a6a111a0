package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursebay/coursebay/cli/internal/config"
	"github.com/coursebay/coursebay/cli/internal/ui"
	"github.com/coursebay/coursebay/schema"
	"github.com/coursebay/coursebay/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the platform database",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the schema and seed baseline data",
	Long: `Create every table, apply column additions and insert the default
settings, bootstrap admin account and sample catalog. Safe to run on
every deploy: existing objects and rows are left untouched.`,
	RunE: runDBInit,
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert baseline data into an initialized database",
	RunE:  runDBSeed,
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-table row counts",
	RunE:  runDBStatus,
}

var dbExecCmd = &cobra.Command{
	Use:   "exec <statement>",
	Short: "Run a raw statement through the adapter",
	Long: `Run one SQL statement through the dual-backend adapter. SELECT
results are printed as a table; writes print their mutation summary.
Use the embedded engine's placeholder and DDL dialect regardless of the
active backend.`,
	Args: cobra.ExactArgs(1),
	RunE: runDBExec,
}

var dbSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Render the declared schema reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.PrintMarkdown(schema.Reference())
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd, dbSeedCmd, dbStatusCmd, dbExecCmd, dbSchemaCmd)
	rootCmd.AddCommand(dbCmd)
}

// openStore resolves configuration and binds the selected engine.
func openStore() (store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := store.Open(cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}

func backendName(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return fmt.Sprintf("sqlite (%s)", cfg.DatabasePath)
}

func runDBInit(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		ui.PrintError("could not open database: %v", err)
		return err
	}
	defer st.Close()

	ui.PrintHeader("Database setup", "backend: "+backendName(cfg))

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	spinner := ui.Spinner("Creating tables")
	if err := schema.Init(ctx, st); err != nil {
		spinner.Fail("schema initialization failed")
		return err
	}
	spinner.Success("Tables ready")

	spinner = ui.Spinner("Seeding baseline data")
	if err := schema.Seed(ctx, st); err != nil {
		spinner.Fail("seeding failed")
		return err
	}
	spinner.Success("Baseline data ready")

	ui.PrintSuccess("database initialized")
	return nil
}

func runDBSeed(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		ui.PrintError("could not open database: %v", err)
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	if err := schema.Seed(ctx, st); err != nil {
		ui.PrintError("seeding failed: %v", err)
		return err
	}

	ui.PrintSuccess("seed complete on %s", backendName(cfg))
	return nil
}

func runDBStatus(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		ui.PrintError("could not open database: %v", err)
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	ui.PrintHeader("Database status", "backend: "+backendName(cfg))

	rows := make([][]string, 0, len(schema.Tables()))
	for _, table := range schema.Tables() {
		row, err := st.FetchOne(ctx, "SELECT COUNT(*) AS total FROM "+table)
		if err != nil {
			rows = append(rows, []string{table, "unavailable"})
			continue
		}
		total, _ := store.AsInt64(row["total"])
		rows = append(rows, []string{table, fmt.Sprintf("%d", total)})
	}

	ui.PrintTable([]string{"table", "rows"}, rows)
	return nil
}

func runDBExec(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		ui.PrintError("could not open database: %v", err)
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	statement := args[0]
	if store.Classify(statement) != store.StatementOther {
		summary, err := st.Execute(ctx, statement)
		if err != nil {
			return err
		}
		ui.PrintSuccess("ok: last insert id %d, %d row(s) affected",
			summary.LastInsertID, summary.RowsAffected)
		return nil
	}

	rows, err := st.FetchAll(ctx, statement)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		ui.PrintInfo("no rows")
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		headers = append(headers, col)
	}
	sort.Strings(headers)

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(headers))
		for i, col := range headers {
			line[i] = fmt.Sprintf("%v", row[col])
		}
		out = append(out, line)
	}
	ui.PrintTable(headers, out)
	return nil
}
