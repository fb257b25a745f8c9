package core

import (
	"context"
	"fmt"
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/csvparse"
	"github.com/covidboard/covidstore/schema"
)

// Stage identifies a phase of the store build pipeline, reported through the
// StatusFunc callback.
type Stage string

// Build pipeline stages in execution order.
const (
	StageCheckCache       Stage = "check-cache"
	StageFetchLastUpdated Stage = "fetch-last-updated"
	StageFetchFeeds       Stage = "fetch-feeds"
	StageProcessData      Stage = "process-data"
	StagePersistCache     Stage = "persist-cache"
	StageIndexLocations   Stage = "index-locations"
)

// StatusFunc receives progress notifications during LoadStore. A nil
// StatusFunc disables reporting.
type StatusFunc func(stage Stage, detail string)

// LoadStore builds a queryable store, reading the snapshot cache first and
// falling back to a full fetch-and-process pass on a miss. The fresh result
// is persisted for the configured TTL. Fetch failures are returned as-is and
// never retried.
func LoadStore(ctx context.Context, cfg *contract.Config, client contract.FeedClient, mgr contract.CacheManager, status StatusFunc) (*Store, error) {
	notify := func(stage Stage, detail string) {
		if status != nil {
			status(stage, detail)
		}
	}

	var cache contract.CacheStore
	if mgr != nil {
		cache = mgr.GetSnapshotStore()
	}

	notify(StageCheckCache, string(cfg.CacheBackend))
	if entry, ok := tryLoadSnapshot(cache, cfg.AppVersion); ok {
		notify(StageIndexLocations, fmt.Sprintf("%d locations (cached)", len(entry.Data)))
		return newStore(entry.Data, entry.LastUpdatedAt, cfg.Precision), nil
	}

	notify(StageFetchLastUpdated, cfg.CommitsURL)
	lastUpdated, err := client.FetchLastUpdated(ctx)
	if err != nil {
		return nil, err
	}

	tables := make(map[schema.Feed]*csvparse.Table, len(schema.AllFeeds))
	for _, feed := range schema.AllFeeds {
		notify(StageFetchFeeds, string(feed))
		csvText, err := client.FetchFeed(ctx, feed)
		if err != nil {
			return nil, err
		}
		table, err := csvparse.Parse(csvText)
		if err != nil {
			return nil, fmt.Errorf("parsing %s feed: %w", feed, err)
		}
		tables[feed] = table
	}

	notify(StageProcessData, "")
	data := correlate(tables)
	if err := validateDataset(data); err != nil {
		return nil, err
	}
	aggregateCountryTotals(data)
	patchCanadaRecovered(data, tables[schema.GlobalRecoveredFeed])

	notify(StagePersistCache, string(cfg.CacheBackend))
	storeSnapshot(cache, &schema.CacheEntry{
		ExpiresAt:     time.Now().Add(cfg.CacheTTL),
		AppVersion:    cfg.AppVersion,
		LastUpdatedAt: lastUpdated,
		Data:          data,
	})

	notify(StageIndexLocations, fmt.Sprintf("%d locations", len(data)))
	return newStore(data, lastUpdated, cfg.Precision), nil
}

// validateDataset rejects a correlated dataset that is structurally empty.
// Upstream occasionally serves truncated files; an empty dataset must fail
// the build rather than poison the cache.
func validateDataset(data schema.DataByLocation) error {
	if len(data) == 0 {
		return &schema.DataAnomalyError{Detail: "no locations in confirmed feeds"}
	}
	for _, series := range data {
		if len(series.Values) == 0 {
			return &schema.DataAnomalyError{Detail: fmt.Sprintf("location %q has no dates", series.Location)}
		}
	}
	return nil
}
