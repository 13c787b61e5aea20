package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrendResults outputs the rolling trend to the configured output file or stdout.
func PrintTrendResults(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrendResults(w, result, cfg, duration)
	}, fmt.Sprintf("Wrote %s trend results", cfg.Output))
}

// WriteTrendResults dispatches the rolling trend based on the output format configured.
func WriteTrendResults(w io.Writer, result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForTrend(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeTrendTable(w, result, cfg, fmtFloat, intFmt, duration); err != nil {
			return fmt.Errorf("error writing trend table output: %w", err)
		}
	}
	return nil
}

// writeCSVResultsForTrend writes one row per trend point.
func writeCSVResultsForTrend(w io.Writer, result schema.TrendResult, fmtFloat func(float64) string) error {
	header := []string{"date", "window_days", "mood", "energy", "stress", "count"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range result.Points {
			row := []string{
				formatPointDate(p.Date, result.Granularity),
				strconv.Itoa(result.WindowDays),
				fmtFloat(p.Mood),
				fmtFloat(p.Energy),
				fmtFloat(p.Stress),
				strconv.Itoa(p.Count),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeTrendTable prints the trend in a table with a mood band column.
func writeTrendTable(w io.Writer, result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	if len(result.Points) == 0 {
		_, err := fmt.Fprintln(w, "No entries yet. Add one with `moodtrack add` or `moodtrack seed`.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Mood", "Energy", "Stress", "Entries", "Mood Band"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range result.Points {
		data = append(data, []string{
			formatPointDate(p.Date, result.Granularity),
			fmtFloat(p.Mood),
			fmtFloat(p.Energy),
			fmtFloat(p.Stress),
			fmt.Sprintf(intFmt, p.Count),
			bandLabel(p.Mood, false, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Rolling trend over %d days (%s granularity) computed in %v. Store backend: %s\n",
		result.WindowDays, result.Granularity, duration, cfg.DBBackend)
	return err
}
