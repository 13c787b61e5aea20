// Package parquet provides data structures and functions for exporting mood
// entries and rolling trends to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/parquet-go/parquet-go"
)

// EntryRow represents a single stored mood entry.
// This struct maps to the mood_entries database table.
type EntryRow struct {
	// ID is the unique identifier of the entry
	ID string `parquet:"id,snappy"`

	// RecordedAt is when the check-in happened (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	Mood   int32 `parquet:"mood,snappy"`
	Energy int32 `parquet:"energy,snappy"`
	Stress int32 `parquet:"stress,snappy"`

	// Notes is the free-text note (nullable when blank)
	Notes *string `parquet:"notes,optional,snappy"`

	// CreatedAt is when the entry was stored
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// TrendRow represents one point of a rolling trend.
type TrendRow struct {
	// Date is the series timestamp the window ends at
	Date time.Time `parquet:"date,snappy"`

	// WindowDays is the trailing window length used to compute the means
	WindowDays int32 `parquet:"window_days,snappy"`

	Mood   float64 `parquet:"mood,snappy"`
	Energy float64 `parquet:"energy,snappy"`
	Stress float64 `parquet:"stress,snappy"`

	// Count is the number of entries inside the window
	Count int32 `parquet:"count,snappy"`
}

// WriteEntriesParquet writes a slice of EntryRow structs to a Parquet file.
func WriteEntriesParquet(data []EntryRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTrendParquet writes a slice of TrendRow structs to a Parquet file.
func WriteTrendParquet(data []TrendRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertEntries converts schema.Entry values to EntryRow for Parquet export.
func ConvertEntries(entries []schema.Entry) []EntryRow {
	result := make([]EntryRow, len(entries))
	for i, e := range entries {
		var notes *string
		if e.Notes != "" {
			n := e.Notes
			notes = &n
		}
		result[i] = EntryRow{
			ID:         e.ID,
			RecordedAt: e.Timestamp,
			Mood:       int32(e.Mood),
			Energy:     int32(e.Energy),
			Stress:     int32(e.Stress),
			Notes:      notes,
			CreatedAt:  e.CreatedAt,
		}
	}
	return result
}

// ConvertTrendPoints converts rolling trend points to TrendRow for Parquet export.
func ConvertTrendPoints(points []schema.TrendPoint, windowDays int) []TrendRow {
	result := make([]TrendRow, len(points))
	for i, p := range points {
		result[i] = TrendRow{
			Date:       p.Date,
			WindowDays: int32(windowDays),
			Mood:       p.Mood,
			Energy:     p.Energy,
			Stress:     p.Stress,
			Count:      int32(p.Count),
		}
	}
	return result
}
