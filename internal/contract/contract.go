// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/moodtrack/schema"
)

// StoreManager defines the interface for reaching the configured entry store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetEntryStore() EntryStore
}

// EntryStore defines the append-only persistence of mood entries.
type EntryStore interface {
	// Insert stores a new entry and returns it with ID and CreatedAt assigned.
	Insert(ctx context.Context, entry schema.Entry) (schema.Entry, error)

	// FetchAll returns every entry ascending by timestamp, then insertion time.
	FetchAll(ctx context.Context) ([]schema.Entry, error)

	// FetchRange returns entries with start <= timestamp <= end, ascending.
	FetchRange(ctx context.Context, start, end time.Time) ([]schema.Entry, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// Uploader copies a local file to object storage.
type Uploader interface {
	// Name identifies the destination in logs, e.g. "s3" or "gcs".
	Name() string

	// Upload stores the file under objectName and returns its URI.
	Upload(ctx context.Context, filePath, objectName string) (string, error)
}

// Notifier announces generated reports to other systems.
type Notifier interface {
	PublishReport(ctx context.Context, report schema.ReportOutput) error
	Close() error
}
