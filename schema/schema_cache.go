package schema

import "time"

// CacheEntry is a fully processed dataset snapshot as persisted by the cache.
// It is created after a full pipeline run and read back on store
// initialization; it is treated as absent when expired or written by a
// different application version.
type CacheEntry struct {
	ExpiresAt     time.Time
	AppVersion    string
	LastUpdatedAt time.Time
	Data          DataByLocation
}

// CacheStatus contains status information about a snapshot cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
