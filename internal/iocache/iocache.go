// Package iocache is for caching I/O results across runs.
package iocache

import (
	"sync"

	"github.com/covidboard/covidstore/internal/contract"
)

// CacheStoreManager manages the snapshot CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshot     contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetSnapshotStore returns the snapshot CacheStore.
func (mgr *CacheStoreManager) GetSnapshotStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshot
}
