// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrend prints a rolling trend using the configured output format.
func (ow *OutWriter) WriteTrend(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}

// WriteSummary prints a weekly summary using the configured output format.
func (ow *OutWriter) WriteSummary(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintSummaryResults(result, cfg, duration)
}

// WriteOverview prints the all-time overview using the configured output format.
// A nil overview means there is no data.
func (ow *OutWriter) WriteOverview(overview *schema.Overview, cfg *contract.Config, duration time.Duration) error {
	return PrintOverviewResults(overview, cfg, duration)
}

// WriteEntries prints stored entries using the configured output format.
func (ow *OutWriter) WriteEntries(entries []schema.Entry, cfg *contract.Config, duration time.Duration) error {
	return PrintEntries(entries, cfg, duration)
}
