package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/moodtrack/schema"
)

// NoWeeklyData is rendered when a weekly summary is absent.
const NoWeeklyData = "No data for this week."

// WeeklySummary averages the entries whose calendar day lies in [end-6d, end].
// A zero end means the latest timestamp in the series. The boolean is false when
// the series or the window is empty.
func (s *Series) WeeklySummary(end time.Time) (schema.WeeklySummary, bool) {
	if s.Empty() {
		return schema.WeeklySummary{}, false
	}
	start, last := s.weekBounds(end)

	var sums scoreSums
	for _, e := range s.entries {
		if inWeek(e, start, last) {
			sums.add(e)
		}
	}
	if sums.n == 0 {
		return schema.WeeklySummary{}, false
	}

	mood, energy, stress := sums.means()
	return schema.WeeklySummary{
		StartDate: start,
		EndDate:   last,
		AvgMood:   mood,
		AvgEnergy: energy,
		AvgStress: stress,
		Count:     sums.n,
	}, true
}

// FormatWeeklySummary renders the weekly summary ending at end as plain text.
func (s *Series) FormatWeeklySummary(end time.Time) string {
	return FormatWeeklySummary(s.WeeklySummary(end))
}

// FormatWeeklySummary renders a summary as the six line text block used by the CLI and report.
func FormatWeeklySummary(summary schema.WeeklySummary, ok bool) string {
	if !ok {
		return NoWeeklyData
	}
	lines := []string{
		"Weekly Summary (Most Recent)",
		fmt.Sprintf("Start Date: %s", summary.StartDate.Format(schema.DateFormat)),
		fmt.Sprintf("End Date:   %s", summary.EndDate.Format(schema.DateFormat)),
		fmt.Sprintf("Average Mood:   %.2f", summary.AvgMood),
		fmt.Sprintf("Average Energy: %.2f", summary.AvgEnergy),
		fmt.Sprintf("Average Stress: %.2f", summary.AvgStress),
	}
	return strings.Join(lines, "\n")
}
