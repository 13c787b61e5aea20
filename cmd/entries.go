package cmd

import (
	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/huangsam/moodtrack/schema"
	"github.com/spf13/cobra"
)

// addCmd records one check-in.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a mood, energy and stress check-in",
	Long: `Store one check-in with 1-5 scores and an optional note.

Scores outside 1-5 are rejected. The timestamp defaults to now.

Examples:
  # Quick check-in
  moodtrack add --mood 4 --energy 3 --stress 2

  # Backdated check-in with a note
  moodtrack add -m 2 -e 2 -s 4 --notes "long day" --at 2024-03-01T18:30:00Z`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		rec, err := recordFromFlags(cmd)
		if err != nil {
			contract.LogFatal("Invalid check-in", err)
		}
		if err := core.ExecuteAdd(rootCtx, store.Manager, rec); err != nil {
			contract.LogFatal("Cannot add check-in", err)
		}
	},
}

// recordFromFlags builds a record from the add flags. Unset flags stay nil.
func recordFromFlags(cmd *cobra.Command) (schema.EntryRecord, error) {
	var rec schema.EntryRecord
	flags := cmd.Flags()
	for name, dst := range map[string]**int{"mood": &rec.Mood, "energy": &rec.Energy, "stress": &rec.Stress} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return rec, err
		}
		*dst = &v
	}
	if flags.Changed("notes") {
		notes, _ := flags.GetString("notes")
		rec.Notes = &notes
	}
	if at, _ := flags.GetString("at"); at != "" {
		ts, err := contract.ParseTimestamp(at)
		if err != nil {
			return rec, err
		}
		rec.Timestamp = &ts
	}
	return rec, nil
}

// seedCmd writes demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the store with demo check-ins",
	Long: `Write one random check-in per day ending today, each with a "Demo note N".

Useful for trying trend, summary and report without real data.

Examples:
  # Three weeks of demo data
  moodtrack seed

  # Demo data in a throwaway in-memory store
  moodtrack seed --rows 60 --db-backend none`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		rows, _ := cmd.Flags().GetInt("rows")
		if err := core.ExecuteSeed(rootCtx, store.Manager, rows); err != nil {
			contract.LogFatal("Cannot seed demo data", err)
		}
	},
}

// importCmd loads check-ins from a file.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import check-ins from a JSON or CSV file",
	Long: `Load check-ins from a JSON array or a CSV file with a header row.

Every record is validated before anything is stored, so a bad row
leaves the store untouched.

CSV columns are matched by name: timestamp, mood, energy, stress, notes.

Examples:
  moodtrack import checkins.csv
  moodtrack import export.txt --format json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		if err := core.ExecuteImport(rootCtx, store.Manager, args[0], format); err != nil {
			contract.LogFatal("Cannot import check-ins", err)
		}
	},
}

// entriesCmd lists stored check-ins.
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List stored check-ins",
	Long: `List check-ins in timestamp order.

With --end, only the window ending on that day is listed.

Examples:
  # Everything
  moodtrack entries

  # The week ending yesterday, as CSV
  moodtrack entries --end "1 day ago" --window 7 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEntries(rootCtx, cfg, store.Manager); err != nil {
			contract.LogFatal("Cannot list check-ins", err)
		}
	},
}
