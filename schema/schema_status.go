package schema

import "time"

// StoreStatus represents the status of the entry store.
type StoreStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalEntries    int64            `json:"total_entries"`
	OldestEntryTime time.Time        `json:"oldest_entry_time"`
	LatestEntryTime time.Time        `json:"latest_entry_time"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}

// ReportOutput describes a generated weekly report and where it went.
type ReportOutput struct {
	Path     string        `json:"path"`
	Summary  WeeklySummary `json:"summary"`
	TopNotes []string      `json:"top_notes"`
	Points   int           `json:"points"`
	Uploaded []string      `json:"uploaded"`
	Notified bool          `json:"notified"`
}
