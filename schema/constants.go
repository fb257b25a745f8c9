package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string

	// Feed identifies one of the upstream time-series feeds.
	Feed string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// The five upstream time-series feeds.
const (
	GlobalConfirmedFeed Feed = "confirmed_global"
	GlobalDeathsFeed    Feed = "deaths_global"
	GlobalRecoveredFeed Feed = "recovered_global"
	USConfirmedFeed     Feed = "confirmed_US"
	USDeathsFeed        Feed = "deaths_US"
)

// AllFeeds lists every upstream feed in fetch order.
var AllFeeds = []Feed{
	GlobalConfirmedFeed,
	GlobalDeathsFeed,
	GlobalRecoveredFeed,
	USConfirmedFeed,
	USDeathsFeed,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
