package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/internal/iocache"
	"github.com/synthcast/synthcast/schema"
)

// storeSetup loads minimal configuration needed for run store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the run store with the loaded config
	if err := iocache.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on run store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by forecasting commands. This avoids generator
// validation and hyperparameter processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the run store (saved forecast results)",
	Long: `Manage the run store that keeps completed forecast runs.

Synthcast stores each finished run keyed by its configuration hash, so
repeating an identical run is served from storage instead of retraining.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored runs
  export  - Export stored runs to a Parquet file
  migrate - Apply schema migrations to the store

Examples:
  # Check store status
  synthcast store status

  # Drop all stored runs
  synthcast store clear`,
}

// storeClearCmd clears the run store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored run results",
	Long: `Delete all stored run results from the configured backend.

Use this when:
- The evaluation logic changed and stored runs are stale
- Benchmarking without stored results
- Reclaiming disk space after large sweeps

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the runs table

Examples:
  # Clear SQLite store (default)
  synthcast store clear

  # Clear MySQL store (set connection string via env variable)
  SYNTHCAST_STORE_BACKEND=mysql SYNTHCAST_STORE_DB_CONNECT="..." synthcast store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearRuns(cfg.StoreBackend, contract.GetRunDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear run store", err)
		}
		fmt.Println("Run store cleared successfully.")
	},
}

// storeStatusCmd shows run store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run store statistics and connection details",
	Long: `Show detailed information about the run store.

Displays:
- Backend type and connection status
- Total number of stored runs
- Last and oldest stored run timestamps
- Store database size

Examples:
  # Check store status
  synthcast store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Failed to get store status", fmt.Errorf("run storage is not configured"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		iocache.PrintRunStoreStatus(status)
	},
}

// storeExportCmd exports stored runs to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs to a Parquet file",
	Long: `Flatten every stored run into one row per evaluated method and write
the result to a Parquet file.

The exported rows carry the run key, storage timestamp, method, error
metrics, skill, split, seed, and noise level, which makes them easy to
load into pandas, DuckDB, or a warehouse for offline analysis.

Examples:
  # Export all stored runs
  synthcast store export --output-file runs.parquet

  # Export from a PostgreSQL store
  SYNTHCAST_STORE_BACKEND=postgresql SYNTHCAST_STORE_DB_CONNECT="..." \
    synthcast store export --output-file runs.parquet`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteRunExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export stored runs", err)
		}
	},
}

// storeMigrateCmd applies schema migrations to the run store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the run store",
	Long: `Apply embedded schema migrations to the configured run store backend.

By default migrates to the latest version. Use --target-version to pin
a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema
  synthcast store migrate

  # Roll back to the initial state
  synthcast store migrate --target-version 0`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := iocache.MigrateRuns(cfg.StoreBackend, cfg.StoreDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate run store", err)
		}
		fmt.Println("Run store migrations applied successfully.")
	},
}
