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

// PrintEntries outputs stored entries to the configured output file or stdout.
func PrintEntries(entries []schema.Entry, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteEntries(w, entries, cfg, duration)
	}, fmt.Sprintf("Wrote %s entries", cfg.Output))
}

// WriteEntries dispatches entries based on the output format configured.
func WriteEntries(w io.Writer, entries []schema.Entry, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, entries); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVEntries(w, entries); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeEntriesTable(w, entries, cfg, duration); err != nil {
			return fmt.Errorf("error writing entries table output: %w", err)
		}
	}
	return nil
}

// writeCSVEntries uses the same columns that `moodtrack import` reads back.
func writeCSVEntries(w io.Writer, entries []schema.Entry) error {
	header := []string{"id", "timestamp", "mood", "energy", "stress", "notes", "created_at"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range entries {
			row := []string{
				e.ID,
				e.Timestamp.Format(time.RFC3339),
				strconv.Itoa(e.Mood),
				strconv.Itoa(e.Energy),
				strconv.Itoa(e.Stress),
				e.Notes,
				e.CreatedAt.Format(time.RFC3339),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeEntriesTable(w io.Writer, entries []schema.Entry, cfg *contract.Config, duration time.Duration) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries yet. Add one with `moodtrack add` or `moodtrack seed`.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Recorded", "Mood", "Energy", "Stress", "Notes"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	noteWidth := GetMaxTableNoteWidth(cfg)
	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			e.Timestamp.Format("2006-01-02 15:04"),
			strconv.Itoa(e.Mood),
			strconv.Itoa(e.Energy),
			strconv.Itoa(e.Stress),
			contract.TruncateNote(e.Notes, noteWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Listed %d entries in %v. Store backend: %s\n", len(entries), duration, cfg.DBBackend)
	return err
}
