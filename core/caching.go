package core

import (
	"encoding/json"
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
)

// Cache keys for the logically-separated snapshot fields. Splitting them lets
// the hit check read the small metadata keys before touching the payload.
const (
	cacheKeyExpiresAt   = "snapshot:expires_at"
	cacheKeyVersion     = "snapshot:app_version"
	cacheKeyLastUpdated = "snapshot:last_updated"
	cacheKeyData        = "snapshot:data"
)

// legacyCacheKeys are the unprefixed key names used before the snapshot
// layout was versioned. They are purged on every successful write.
var legacyCacheKeys = []string{"expires_at", "app_version", "last_updated", "data"}

// tryLoadSnapshot attempts to read a usable snapshot from the cache. Any
// absent key, expired snapshot, version mismatch or decode failure is a miss.
func tryLoadSnapshot(store contract.CacheStore, appVersion string) (*schema.CacheEntry, bool) {
	if store == nil {
		return nil, false
	}

	raw, err := store.Get(cacheKeyExpiresAt)
	if err != nil {
		return nil, false
	}
	expiresAt, err := time.Parse(time.RFC3339, string(raw))
	if err != nil || time.Now().After(expiresAt) {
		return nil, false
	}

	raw, err = store.Get(cacheKeyVersion)
	if err != nil || string(raw) != appVersion {
		return nil, false
	}

	raw, err = store.Get(cacheKeyLastUpdated)
	if err != nil {
		return nil, false
	}
	lastUpdated, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return nil, false
	}

	raw, err = store.Get(cacheKeyData)
	if err != nil {
		return nil, false
	}
	var data schema.DataByLocation
	if err := json.Unmarshal(raw, &data); err != nil || len(data) == 0 {
		return nil, false
	}

	return &schema.CacheEntry{
		ExpiresAt:     expiresAt,
		AppVersion:    appVersion,
		LastUpdatedAt: lastUpdated,
		Data:          data,
	}, true
}

// storeSnapshot persists a freshly built snapshot. Persistence is best
// effort: a write failure leaves the caller with a working in-memory store
// and the next run simply misses the cache.
func storeSnapshot(store contract.CacheStore, entry *schema.CacheEntry) {
	if store == nil {
		return
	}

	data, err := json.Marshal(entry.Data)
	if err != nil {
		return
	}

	_ = store.Set(cacheKeyData, data)
	_ = store.Set(cacheKeyLastUpdated, []byte(entry.LastUpdatedAt.Format(time.RFC3339)))
	_ = store.Set(cacheKeyVersion, []byte(entry.AppVersion))
	// The expiry key is written last so a partially written snapshot can
	// never pass the hit check.
	_ = store.Set(cacheKeyExpiresAt, []byte(entry.ExpiresAt.Format(time.RFC3339)))

	for _, key := range legacyCacheKeys {
		_ = store.Delete(key)
	}
}
