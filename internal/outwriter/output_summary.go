package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
)

// PrintSummaryResults outputs the weekly summary to the configured output file or stdout.
func PrintSummaryResults(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSummaryResults(w, result, cfg, duration)
	}, fmt.Sprintf("Wrote %s weekly summary", cfg.Output))
}

// WriteSummaryResults dispatches the weekly summary based on the output format configured.
func WriteSummaryResults(w io.Writer, result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForSummary(w, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeSummaryText(w, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing summary output: %w", err)
		}
	}
	return nil
}

// writeCSVResultsForSummary writes a single summary row; notes are joined with "|".
// An absent summary yields the header only.
func writeCSVResultsForSummary(w io.Writer, result schema.SummaryResult, fmtFloat func(float64) string) error {
	header := []string{"start_date", "end_date", "avg_mood", "avg_energy", "avg_stress", "count", "top_notes"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		s := result.Summary
		if s == nil {
			return nil
		}
		return csvWriter.Write([]string{
			s.StartDate.Format(schema.DateFormat),
			s.EndDate.Format(schema.DateFormat),
			fmtFloat(s.AvgMood),
			fmtFloat(s.AvgEnergy),
			fmtFloat(s.AvgStress),
			strconv.Itoa(s.Count),
			strings.Join(result.TopNotes, "|"),
		})
	})
}

// writeSummaryText prints the summary block, the bands and the recent notes.
func writeSummaryText(w io.Writer, result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	var b strings.Builder
	b.WriteString(result.Text)
	b.WriteString("\n")

	if s := result.Summary; s != nil {
		fmt.Fprintf(&b, "Bands: mood %s, energy %s, stress %s (%d entries)\n",
			bandLabel(s.AvgMood, false, cfg), bandLabel(s.AvgEnergy, false, cfg), bandLabel(s.AvgStress, true, cfg), s.Count)

		b.WriteString("\nNotes (recent):\n")
		if len(result.TopNotes) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, note := range result.TopNotes {
			fmt.Fprintf(&b, "  - %s\n", contract.TruncateNote(note, GetMaxTableNoteWidth(cfg)))
		}
	}

	fmt.Fprintf(&b, "Summary computed in %v. Store backend: %s\n", duration, cfg.DBBackend)
	_, err := io.WriteString(w, b.String())
	return err
}
