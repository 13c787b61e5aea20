package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/outwriter"
	"github.com/huangsam/moodtrack/schema"
)

// ExecutorFunc defines the function signature for executing the read-side commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// loadSeries fetches every stored entry and builds a fresh series. Nothing is cached between calls.
func loadSeries(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*Series, error) {
	entries, err := mgr.GetEntryStore().FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}
	return NewSeries(entries, cfg.Granularity), nil
}

func logHeader(ctx context.Context, cfg *contract.Config, what string) {
	if shouldSuppressHeader(ctx) {
		return
	}
	outwriter.LogQueryHeader(os.Stderr, cfg, what)
}

// GetTrendResults computes the rolling trend over all stored entries.
func GetTrendResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.TrendResult, time.Duration, error) {
	start := time.Now()
	logHeader(ctx, cfg, "rolling trend")

	series, err := loadSeries(ctx, cfg, mgr)
	if err != nil {
		return schema.TrendResult{}, 0, err
	}
	points, err := series.RollingTrend(cfg.WindowDays)
	if err != nil {
		return schema.TrendResult{}, 0, err
	}
	return schema.TrendResult{
		WindowDays:  cfg.WindowDays,
		Granularity: series.Granularity(),
		Points:      points,
	}, time.Since(start), nil
}

// ExecuteTrend computes the rolling trend and prints it.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetTrendResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTrend(result, cfg, duration)
}

// GetSummaryResults computes the weekly summary and recent notes for the week ending at cfg.EndDate.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.SummaryResult, time.Duration, error) {
	start := time.Now()
	logHeader(ctx, cfg, "weekly summary")

	series, err := loadSeries(ctx, cfg, mgr)
	if err != nil {
		return schema.SummaryResult{}, 0, err
	}
	return summarize(series, cfg.EndDate, cfg.NotesLimit), time.Since(start), nil
}

func summarize(series *Series, end time.Time, notesLimit int) schema.SummaryResult {
	summary, ok := series.WeeklySummary(end)
	result := schema.SummaryResult{
		TopNotes: series.TopNotes(end, notesLimit),
		Text:     FormatWeeklySummary(summary, ok),
	}
	if ok {
		result.Summary = &summary
	}
	return result
}

// ExecuteSummary computes the weekly summary and prints it.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetSummaryResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSummary(result, cfg, duration)
}

// GetOverviewResults aggregates the whole history. A nil overview means the store is empty.
func GetOverviewResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.Overview, time.Duration, error) {
	start := time.Now()
	logHeader(ctx, cfg, "overview")

	series, err := loadSeries(ctx, cfg, mgr)
	if err != nil {
		return nil, 0, err
	}
	overview, ok := series.Overview()
	if !ok {
		return nil, time.Since(start), nil
	}
	return &overview, time.Since(start), nil
}

// ExecuteOverview aggregates the whole history and prints it.
func ExecuteOverview(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	overview, duration, err := GetOverviewResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteOverview(overview, cfg, duration)
}

// GetEntriesResults lists stored entries. Without an end date every entry is returned;
// otherwise only the cfg.WindowDays calendar days ending at the end date.
func GetEntriesResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.Entry, time.Duration, error) {
	start := time.Now()
	store := mgr.GetEntryStore()

	var entries []schema.Entry
	var err error
	if cfg.EndDate.IsZero() {
		entries, err = store.FetchAll(ctx)
	} else {
		from, to := EntriesRange(cfg.EndDate, cfg.WindowDays)
		entries, err = store.FetchRange(ctx, from, to)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch entries: %w", err)
	}
	if entries == nil {
		entries = []schema.Entry{}
	}
	return entries, time.Since(start), nil
}

// EntriesRange returns the instant bounds covering the days calendar days ending at end.
func EntriesRange(end time.Time, days int) (from, to time.Time) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	last := schema.TruncateDay(end)
	return last.AddDate(0, 0, -(days - 1)), last.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ExecuteEntries lists stored entries and prints them.
func ExecuteEntries(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	entries, duration, err := GetEntriesResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteEntries(entries, cfg, duration)
}
