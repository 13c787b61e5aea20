package cmd

import (
	"fmt"

	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeCmd focused on entry store management.
//
// Note: status and export need an open store and use sharedSetup, while
// clear and migrate use storeSetup so they work on a fresh database.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the check-in store",
	Long: `Manage where check-ins are persisted.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored check-ins
  migrate - Run database schema migrations
  export  - Export check-ins and trend to Parquet

Examples:
  moodtrack store status
  MOODTRACK_DB_BACKEND=postgresql MOODTRACK_DB_CONNECT="host=localhost dbname=mood" moodtrack store migrate`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show the backend, connection state, entry count, the oldest and latest
check-in, and per-table row counts.

Examples:
  moodtrack store status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.Manager.GetEntryStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		store.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored check-ins",
	Long: `Delete every stored check-in from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the entry and migration tables

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  moodtrack store export --output-file backup
  moodtrack store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.ClearStore(cfg.DBBackend, cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations",
	Long: `Apply or roll back the embedded schema migrations.

  --target-version -1  migrate to the latest version (default)
  --target-version 0   roll back everything
  --target-version N   migrate up or down to version N

Examples:
  moodtrack store migrate
  moodtrack store migrate --target-version 0`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := store.MigrateStore(cfg.DBBackend, cfg.DBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate store", err)
		}
		fmt.Println("Migrations applied successfully.")
	},
}

// storeExportCmd exports the store to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export check-ins and rolling trend to Parquet",
	Long: `Write <output-file>.entries.parquet and <output-file>.trend.parquet for
analysis in DuckDB, pandas or any Parquet reader.

Examples:
  moodtrack store export --output-file mood
  duckdb -c "SELECT avg(mood) FROM 'mood.entries.parquet'"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStoreExport(rootCtx, cfg, store.Manager, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export store", err)
		}
	},
}
