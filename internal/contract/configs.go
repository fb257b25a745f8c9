package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/covidboard/covidstore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 10000
	DefaultPrecision   = 2
	DefaultCacheTTL    = "6h"
	DefaultTimeout     = "30s"
)

// Default upstream endpoints (the JHU CSSE COVID-19 dataset).
const (
	DefaultDataURL    = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"
	DefaultCommitsURL = "https://api.github.com/repos/CSSEGISandData/COVID-19/commits?path=csse_covid_19_data/csse_covid_19_time_series&page=1&per_page=1"
)

// Config holds the validated runtime configuration.
type Config struct {
	DataURL        string                 // Base URL of the time-series CSV directory
	CommitsURL     string                 // Commit-metadata endpoint for the last-updated timestamp
	CacheBackend   schema.DatabaseBackend // Snapshot cache backend
	CacheDBConnect string                 // Connection string for mysql/postgresql backends
	CacheTTL       time.Duration          // Snapshot freshness window
	AppVersion     string                 // Running application version (part of the cache key contract)
	Output         schema.OutputMode      // Output format for CLI commands
	OutputFile     string                 // Optional path to write output to
	ResultLimit    int                    // Maximum rows shown by listing commands
	Precision      int                    // Decimal precision for rate columns
	Color          bool                   // Colored labels in table output
	Width          int                    // Terminal width override (0 = auto-detect)
	Timeout        time.Duration          // Per-request HTTP timeout
}

// ConfigRawInput holds the raw inputs from flags, env and config file that
// require parsing or validation before use. Viper unmarshals into this struct.
type ConfigRawInput struct {
	DataURL        string `mapstructure:"data-url"`
	CommitsURL     string `mapstructure:"commits-url"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	CacheTTL       string `mapstructure:"cache-ttl"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
	Timeout        string `mapstructure:"timeout"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Upstream endpoints ---
	if strings.TrimSpace(input.DataURL) == "" {
		return fmt.Errorf("data-url cannot be empty")
	}
	cfg.DataURL = strings.TrimRight(input.DataURL, "/")

	if strings.TrimSpace(input.CommitsURL) == "" {
		return fmt.Errorf("commits-url cannot be empty")
	}
	cfg.CommitsURL = input.CommitsURL

	// --- 2. Cache backend ---
	backend := schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend %q. must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(backend, input.CacheDBConnect); err != nil {
		return err
	}

	// --- 3. Cache TTL ---
	ttl, err := time.ParseDuration(input.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid cache-ttl %q: %w", input.CacheTTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("cache-ttl must be positive (received %s)", input.CacheTTL)
	}
	cfg.CacheTTL = ttl

	// --- 4. Output ---
	out := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[out]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json", input.Output)
	}
	cfg.Output = out
	cfg.OutputFile = input.OutputFile

	// --- 5. Limit and precision ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 1 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 6. Color ---
	colorOn, err := ParseBoolFlag(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	cfg.Color = colorOn
	cfg.Width = input.Width

	// --- 7. HTTP timeout ---
	timeout, err := time.ParseDuration(input.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive (received %s)", input.Timeout)
	}
	cfg.Timeout = timeout

	return nil
}

// ValidateDatabaseConnectionString checks that a connection string is present
// for backends that require one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("cache-db-connect is required for the %s backend", backend)
		}
	}
	return nil
}

// ParseBoolFlag interprets the yes/no-style string flags used for toggles.
func ParseBoolFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("must be one of yes, no, true, false, 1, 0")
}
