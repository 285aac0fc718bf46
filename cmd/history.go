package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/history"
	"github.com/restorepath/readiness/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyBackendConfig reads and validates the backend settings shared by the history commands.
func historyBackendConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("history-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if !schema.ValidDatabaseBackends[backend] {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads minimal configuration and opens the store.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := historyBackendConfig(); err != nil {
		return err
	}
	if err := history.InitStores(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyOfflineSetupWrapper loads the backend settings without opening the store,
// so migrations can run on a fresh database and clear can remove the file.
func historyOfflineSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyBackendConfig()
}

// sqliteFilePath returns the database file of the sqlite backend.
func sqliteFilePath() string {
	if cfg.HistoryDBConnect != "" {
		return cfg.HistoryDBConnect
	}
	return contract.GetHistoryDBFilePath()
}

// historyCmd focused on stored check-in management.
//
// Note: History subcommands use minimal initialization instead of the full
// sharedSetup used by scoring commands.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored check-ins and exports",
	Long: `Manage the stored check-ins used by the gate and trend commands.

Every scored check-in is stored per user, domain and date. A second check-in
on the same date replaces the first.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show storage statistics
  export  - Export all check-ins to Parquet
  clear   - Remove all stored check-ins
  migrate - Run database schema migrations

Examples:
  readiness history status
  readiness history export --output-file readiness`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display stored check-in statistics and connection details",
	Long: `Show the backend, connection state, number of stored check-ins per domain,
number of users, first and last entry times and the table size.

Examples:
  readiness history status
  readiness history status --history-backend none`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := history.Manager.GetSnapshotStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", fmt.Errorf("history store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyClearCmd clears stored check-ins.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored check-ins",
	Long: `Delete every stored check-in of every user.

For SQLite the database file is removed. For MySQL and PostgreSQL the
snapshots table is dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  readiness history export --output-file backup
  readiness history clear`,
	PreRunE: historyOfflineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ClearHistory(cfg.HistoryBackend, sqliteFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports stored check-ins to Parquet.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored check-ins to Parquet for analytics",
	Long: `Export every stored check-in to a Parquet file named <output-file>.snapshots.parquet.

Requires: --output-file parameter

Examples:
  readiness history export --output-file readiness
  duckdb -c "SELECT domain, avg(score) FROM read_parquet('readiness.snapshots.parquet') GROUP BY domain"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(history.Manager.GetSnapshotStore(), cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  readiness history migrate

  # Rollback to initial state
  readiness history migrate --target-version 0`,
	PreRunE: historyOfflineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		connStr := cfg.HistoryDBConnect
		if cfg.HistoryBackend == schema.SQLiteBackend {
			connStr = sqliteFilePath()
		}
		targetVersion := viper.GetInt("target-version")
		if err := history.MigrateHistory(cfg.HistoryBackend, connStr, targetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
