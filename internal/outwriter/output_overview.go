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
)

// PrintOverviewResults outputs the overview to the configured output file or stdout.
func PrintOverviewResults(overview *schema.Overview, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteOverviewResults(w, overview, cfg, duration)
	}, fmt.Sprintf("Wrote %s overview", cfg.Output))
}

// WriteOverviewResults dispatches the overview based on the output format configured.
func WriteOverviewResults(w io.Writer, overview *schema.Overview, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		// null for an empty store
		if err := writeJSON(w, overview); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		header := []string{"metric", "value"}
		err := writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			if overview == nil {
				return nil
			}
			return csvWriter.WriteAll(overviewRows(overview, fmtFloat))
		})
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeOverviewTable(w, overview, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing overview output: %w", err)
		}
	}
	return nil
}

// overviewRows flattens the overview into metric/value pairs.
func overviewRows(o *schema.Overview, fmtFloat func(float64) string) [][]string {
	return [][]string{
		{"entries", strconv.Itoa(o.Count)},
		{"first_day", formatDay(o.FirstDay)},
		{"last_day", formatDay(o.LastDay)},
		{"avg_mood", fmtFloat(o.AvgMood)},
		{"avg_energy", fmtFloat(o.AvgEnergy)},
		{"avg_stress", fmtFloat(o.AvgStress)},
		{"highest_stress_day", formatDay(o.HighestStressDay)},
		{"lowest_energy_day", formatDay(o.LowestEnergyDay)},
	}
}

func writeOverviewTable(w io.Writer, overview *schema.Overview, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if overview == nil {
		_, err := fmt.Fprintln(w, "No entries yet. Add one with `moodtrack add` or `moodtrack seed`.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Band"})

	bands := map[string]string{
		"avg_mood":   bandLabel(overview.AvgMood, false, cfg),
		"avg_energy": bandLabel(overview.AvgEnergy, false, cfg),
		"avg_stress": bandLabel(overview.AvgStress, true, cfg),
	}
	var data [][]string
	for _, row := range overviewRows(overview, fmtFloat) {
		data = append(data, []string{row[0], row[1], bands[row[0]]})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Overview computed in %v. Store backend: %s\n", duration, cfg.DBBackend)
	return err
}
