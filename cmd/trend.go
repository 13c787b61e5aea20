package cmd

import (
	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/spf13/cobra"
)

// trendCmd shows the rolling trend.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show rolling averages of mood, energy and stress",
	Long: `Compute a trailing rolling mean per check-in.

Each point averages the entries whose time falls within the last --window
days of that point. Windows are measured in calendar time, not entry count,
so gaps in the data shrink the window rather than stretch it.

Examples:
  # 7-day rolling trend
  moodtrack trend

  # 30-day trend using exact check-in times, as JSON
  moodtrack trend --window 30 --granularity instant --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, store.Manager); err != nil {
			contract.LogFatal("Cannot compute trend", err)
		}
	},
}

// summaryCmd shows the weekly summary.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the seven days ending on a date",
	Long: `Average the check-ins of the seven days ending on --end (default: the
latest check-in) and list the most recent notes.

Examples:
  moodtrack summary
  moodtrack summary --end 2024-03-07 --notes-limit 3`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, store.Manager); err != nil {
			contract.LogFatal("Cannot compute summary", err)
		}
	},
}

// overviewCmd shows whole-history statistics.
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show averages and extremes over all check-ins",
	Long: `Show entry count, date span, overall averages, the day with the
highest stress and the day with the lowest energy.

Examples:
  moodtrack overview
  moodtrack overview --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOverview(rootCtx, cfg, store.Manager); err != nil {
			contract.LogFatal("Cannot compute overview", err)
		}
	},
}
