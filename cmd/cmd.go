// Package cmd defines the command-line interface for covidstore.
package cmd

import (
	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-url", contract.DefaultDataURL, "Base URL of the upstream time-series CSV directory")
	rootCmd.PersistentFlags().String("commits-url", contract.DefaultCommitsURL, "Commit-metadata endpoint for the dataset's last-updated timestamp")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL, "Snapshot freshness window (e.g., 6h, 30m)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of table rows to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for rate columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout, "Per-request HTTP timeout (e.g., 30s)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of seriesCmd to Viper
	seriesCmd.Flags().String("date", "", "Show a single day (M/D/YY) instead of the full series")
	seriesCmd.Flags().String("property", string(schema.ConfirmedProperty), "Cumulative property for threshold filtering: confirmed, deaths, recovered")
	seriesCmd.Flags().Int("threshold", 0, "Drop leading days until the property exceeds this value")
	if err := viper.BindPFlags(seriesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding series flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
