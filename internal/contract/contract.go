// Package contract provides interfaces and shared utilities for the
// covidstore CLI's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/covidboard/covidstore/schema"
)

// FeedClient defines the necessary operations against the upstream
// time-series publisher. This allows the pipeline to be tested without
// network access.
type FeedClient interface {
	// FetchFeed returns the raw CSV text of one upstream feed.
	FetchFeed(ctx context.Context, feed schema.Feed) (string, error)

	// FetchLastUpdated returns the author date of the most recent commit
	// touching the time-series directory.
	FetchLastUpdated(ctx context.Context) (time.Time, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetSnapshotStore() CacheStore
}

// CacheStore defines the interface for snapshot cache storage: a flat
// key-value space holding the logically-keyed snapshot fields.
type CacheStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
	GetStatus() (schema.CacheStatus, error)
}
