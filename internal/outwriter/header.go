package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
)

// LogQueryHeader prints a concise, 2-line header describing what is being computed.
func LogQueryHeader(w io.Writer, cfg *contract.Config, what string) {
	// Line 1: the query and where the data comes from
	_, _ = fmt.Fprintf(w, "🔎 Store: %s (%s, %s granularity)\n", cfg.DBBackend, what, cfg.Granularity)

	// Line 2: the window being summarized
	_, _ = fmt.Fprintf(w, "📅 %s\n", describeRange(cfg))
}

func describeRange(cfg *contract.Config) string {
	if cfg.EndDate.IsZero() {
		return fmt.Sprintf("Window: %d days, ending at latest entry", cfg.WindowDays)
	}
	end := cfg.EndDate
	start := schema.TruncateDay(end).AddDate(0, 0, -(cfg.WindowDays - 1))
	return fmt.Sprintf("Window: %s → %s", start.Format(schema.DateFormat), end.Format(schema.DateFormat))
}

// LogDuration prints how long a write-side command took.
func LogDuration(w io.Writer, action string, d time.Duration) {
	_, _ = fmt.Fprintf(w, "✅ %s in %v\n", action, d.Round(time.Millisecond))
}
