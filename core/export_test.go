package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/moodtrack/internal/store"
	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecuteStoreExport(t *testing.T) {
	ctx := context.Background()
	mgr := memoryManager()
	for _, e := range weekFixture() {
		_, err := mgr.GetEntryStore().Insert(ctx, e)
		require.NoError(t, err)
	}

	base := filepath.Join(t.TempDir(), "moodtrack")
	require.NoError(t, ExecuteStoreExport(ctx, baseConfig(), mgr, base))
	assert.FileExists(t, base+".entries.parquet")
	assert.FileExists(t, base+".trend.parquet")
}

func TestExecuteStoreExport_Errors(t *testing.T) {
	ctx := context.Background()

	err := ExecuteStoreExport(ctx, baseConfig(), memoryManager(), "")
	assert.EqualError(t, err, "--output-file is required for export command")

	es := &store.MockEntryStore{}
	es.On("GetStatus", mock.Anything).Return(schema.StoreStatus{Backend: "sqlite"}, nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetEntryStore").Return(es)
	err = ExecuteStoreExport(ctx, baseConfig(), mgr, filepath.Join(t.TempDir(), "x"))
	assert.EqualError(t, err, "no entries found to export")
}
