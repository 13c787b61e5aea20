package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/parquet"
)

// ExecuteStoreExport writes all entries and their rolling trend to Parquet files
// named <outputFile>.entries.parquet and <outputFile>.trend.parquet.
func ExecuteStoreExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetEntryStore()
	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no entries found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total entries: %d\n", status.TotalEntries)

	entries, err := store.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch entries: %w", err)
	}
	points, err := NewSeries(entries, cfg.Granularity).RollingTrend(cfg.WindowDays)
	if err != nil {
		return err
	}

	// stored timestamps, not the day-normalized ones
	entryRows := parquet.ConvertEntries(entries)

	entriesFile := outputFile + ".entries.parquet"
	if err := parquet.WriteEntriesParquet(entryRows, entriesFile); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	fmt.Printf("Exported %d entries to: %s\n", len(entryRows), entriesFile)

	trendRows := parquet.ConvertTrendPoints(points, cfg.WindowDays)
	trendFile := outputFile + ".trend.parquet"
	if err := parquet.WriteTrendParquet(trendRows, trendFile); err != nil {
		return fmt.Errorf("failed to write trend: %w", err)
	}
	fmt.Printf("Exported %d trend points to: %s\n", len(trendRows), trendFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - Any other Parquet-compatible tool")
	return nil
}
