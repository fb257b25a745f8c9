package cmd

import (
	"fmt"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/iocache"
	"github.com/covidboard/covidstore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on snapshot cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by data commands. This avoids upstream endpoint
// validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the snapshot cache (avoids re-downloading the dataset)",
	Long: `Manage the snapshot cache that avoids re-downloading the dataset.

Covidstore caches the fully processed dataset so repeated queries within the
freshness window skip the five upstream CSV downloads entirely.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Run cache schema migrations

Examples:
  # Check cache status
  covidstore cache status

  # Clear the cache to force a fresh download
  covidstore cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshot data",
	Long: `Delete all cached snapshot data from the configured backend.

Use this when:
- You want the next query to fetch fresh upstream data
- The cache may be stale or corrupted
- Testing behavior without a cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  covidstore cache clear

  # Clear MySQL cache (set connection string via env variable)
  COVIDSTORE_CACHE_BACKEND=mysql COVIDSTORE_CACHE_DB_CONNECT="..." covidstore cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the snapshot cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  covidstore cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to initialize cache", err)
		}
		status, err := iocache.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd runs cache schema migrations.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache schema migrations",
	Long: `Run database migrations for the snapshot cache schema.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to the latest version
  covidstore cache migrate

  # Migrate to a specific version
  covidstore cache migrate --target-version 1

  # Roll back all migrations
  covidstore cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run cache migrations", err)
		}
	},
}
