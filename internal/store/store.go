// Package store persists mood entries.
package store

import (
	"sync"

	"github.com/huangsam/moodtrack/internal/contract"
)

// EntryStoreManager holds the process-wide EntryStore.
type EntryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	entries      contract.EntryStore
}

var _ contract.StoreManager = &EntryStoreManager{} // Compile-time check

// GetEntryStore returns the configured EntryStore.
func (mgr *EntryStoreManager) GetEntryStore() contract.EntryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.entries
}

// NewManager wraps an existing store, mostly for tests and the API server.
func NewManager(entries contract.EntryStore) *EntryStoreManager {
	return &EntryStoreManager{entries: entries}
}
