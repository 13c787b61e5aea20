package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
)

// MemoryStore keeps entries in process memory. It backs the none backend.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []schema.Entry
	now     func() time.Time
}

var _ contract.EntryStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Insert appends the entry.
func (m *MemoryStore) Insert(_ context.Context, entry schema.Entry) (schema.Entry, error) {
	entry = prepareEntry(entry, m.now)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return entry, nil
}

// FetchAll returns every entry ascending by timestamp; ties keep insertion order.
func (m *MemoryStore) FetchAll(_ context.Context) ([]schema.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(func(schema.Entry) bool { return true }), nil
}

// FetchRange returns entries with start <= timestamp <= end.
func (m *MemoryStore) FetchRange(_ context.Context, start, end time.Time) ([]schema.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(func(e schema.Entry) bool {
		return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
	}), nil
}

// GetStatus reports the in-memory entry count and time range.
func (m *MemoryStore) GetStatus(_ context.Context) (schema.StoreStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := schema.StoreStatus{
		Backend:      string(schema.NoneBackend),
		Connected:    true,
		TotalEntries: int64(len(m.entries)),
		TableSizes:   map[string]int64{entriesTable: int64(len(m.entries))},
	}
	for i, e := range m.entries {
		if i == 0 || e.Timestamp.Before(status.OldestEntryTime) {
			status.OldestEntryTime = e.Timestamp
		}
		if i == 0 || e.Timestamp.After(status.LatestEntryTime) {
			status.LatestEntryTime = e.Timestamp
		}
	}
	return status, nil
}

// Close drops all entries.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// sorted must be called with the read lock held.
func (m *MemoryStore) sorted(keep func(schema.Entry) bool) []schema.Entry {
	out := make([]schema.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b schema.Entry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out
}
