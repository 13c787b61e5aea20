package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateStore_NoneBackend(t *testing.T) {
	err := MigrateStore(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migration.db")

	// Run migration to latest version
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	// Step down to version 1, then all the way down
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 1))
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 0))

	// Migrate back up to version 2
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 2))
}

func TestMigrateStore_CompatibleWithAutoCreate(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "auto.db")

	s, err := NewEntryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = s.Insert(ctx, schema.Entry{Timestamp: time.Now(), Mood: 3, Energy: 3, Stress: 3})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// The auto-created table and index already exist; migrating must keep the rows.
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	reopened, err := NewEntryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	got, err := reopened.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMigrateStore_SQLiteInMemory(t *testing.T) {
	require.NoError(t, MigrateStore(schema.SQLiteBackend, ":memory:", -1))
}
