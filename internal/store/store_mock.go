package store

import (
	"context"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetEntryStore implements the StoreManager interface.
func (m *MockStoreManager) GetEntryStore() contract.EntryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.EntryStore)
	return store
}

// MockEntryStore is a mock implementation of EntryStore for testing.
type MockEntryStore struct {
	mock.Mock
}

var _ contract.EntryStore = &MockEntryStore{} // Compile-time check

// Insert implements the EntryStore interface.
func (m *MockEntryStore) Insert(ctx context.Context, entry schema.Entry) (schema.Entry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(schema.Entry), args.Error(1)
}

// FetchAll implements the EntryStore interface.
func (m *MockEntryStore) FetchAll(ctx context.Context) ([]schema.Entry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]schema.Entry)
	return entries, args.Error(1)
}

// FetchRange implements the EntryStore interface.
func (m *MockEntryStore) FetchRange(ctx context.Context, start, end time.Time) ([]schema.Entry, error) {
	args := m.Called(ctx, start, end)
	entries, _ := args.Get(0).([]schema.Entry)
	return entries, args.Error(1)
}

// GetStatus implements the EntryStore interface.
func (m *MockEntryStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the EntryStore interface.
func (m *MockEntryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
