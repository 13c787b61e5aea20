package core

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/outwriter"
	"github.com/huangsam/moodtrack/schema"
)

// AddEntry validates a record and stores it. A missing timestamp means now.
func AddEntry(ctx context.Context, mgr contract.StoreManager, rec schema.EntryRecord, now time.Time) (schema.Entry, error) {
	if rec.Timestamp == nil {
		rec.Timestamp = &now
	}
	entry, err := EntryFromRecord(rec)
	if err != nil {
		return schema.Entry{}, err
	}
	if err := validateScores(entry); err != nil {
		return schema.Entry{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	saved, err := mgr.GetEntryStore().Insert(ctx, entry)
	if err != nil {
		return schema.Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}
	return saved, nil
}

func validateScores(e schema.Entry) error {
	if err := contract.ValidateScore("mood", e.Mood); err != nil {
		return err
	}
	if err := contract.ValidateScore("energy", e.Energy); err != nil {
		return err
	}
	return contract.ValidateScore("stress", e.Stress)
}

// ExecuteAdd stores one check-in and confirms it on stdout.
func ExecuteAdd(ctx context.Context, mgr contract.StoreManager, rec schema.EntryRecord) error {
	saved, err := AddEntry(ctx, mgr, rec, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Saved check-in %s (mood %d, energy %d, stress %d)\n", saved.ID, saved.Mood, saved.Energy, saved.Stress)
	return nil
}

// SeedDemo stores rows demo entries ending at now and returns how many were written.
func SeedDemo(ctx context.Context, mgr contract.StoreManager, now time.Time, rows int, rng *rand.Rand) (int, error) {
	store := mgr.GetEntryStore()
	written := 0
	for _, e := range SeedEntries(now, rows, rng) {
		if _, err := store.Insert(ctx, e); err != nil {
			return written, fmt.Errorf("failed to seed entry %d: %w", written, err)
		}
		written++
	}
	return written, nil
}

// ExecuteSeed writes demo data.
func ExecuteSeed(ctx context.Context, mgr contract.StoreManager, rows int) error {
	start := time.Now()
	rng := rand.New(rand.NewPCG(uint64(start.UnixNano()), 0x6d6f6f64))
	n, err := SeedDemo(ctx, mgr, start, rows, rng)
	if err != nil {
		return err
	}
	outwriter.LogDuration(os.Stdout, fmt.Sprintf("Seeded %d demo entries", n), time.Since(start))
	return nil
}

// ImportEntries reads JSON or CSV records and stores them in timestamp order.
// Every record must carry all fields before anything is written. Scores are
// stored as given so historical data outside the 1-5 scale still loads.
func ImportEntries(ctx context.Context, mgr contract.StoreManager, r io.Reader, format string) (int, error) {
	var records []schema.EntryRecord
	var err error
	switch format {
	case "json":
		records, err = ParseJSONRecords(r)
	case "csv":
		records, err = ParseCSVRecords(r)
	default:
		return 0, fmt.Errorf("unsupported import format %q (use json or csv)", format)
	}
	if err != nil {
		return 0, err
	}

	series, err := FromRecords(records, schema.InstantGranularity)
	if err != nil {
		return 0, err
	}

	store := mgr.GetEntryStore()
	written := 0
	for _, e := range series.Entries() {
		e.ID = "" // the store assigns identity
		if _, err := store.Insert(ctx, e); err != nil {
			return written, fmt.Errorf("failed to import entry %d: %w", written, err)
		}
		written++
	}
	return written, nil
}

// ImportFormat infers the import format from a file extension.
func ImportFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".csv":
		return "csv", nil
	}
	return "", fmt.Errorf("cannot infer import format from %q", path)
}

// ExecuteImport imports the records in file.
func ExecuteImport(ctx context.Context, mgr contract.StoreManager, path, format string) error {
	start := time.Now()
	if format == "" {
		var err error
		if format, err = ImportFormat(path); err != nil {
			return err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	n, err := ImportEntries(ctx, mgr, f, format)
	if err != nil {
		return err
	}
	outwriter.LogDuration(os.Stdout, fmt.Sprintf("Imported %d entries from %s", n, path), time.Since(start))
	return nil
}

// jsonRecord is the wire shape of an inbound JSON entry.
// The timestamp stays a string so date-only values parse the same way as CSV cells.
type jsonRecord struct {
	ID        string  `json:"id,omitempty"`
	Timestamp *string `json:"timestamp"`
	Mood      *int    `json:"mood"`
	Energy    *int    `json:"energy"`
	Stress    *int    `json:"stress"`
	Notes     *string `json:"notes,omitempty"`
}

func (j jsonRecord) record() (schema.EntryRecord, error) {
	rec := schema.EntryRecord{ID: j.ID, Mood: j.Mood, Energy: j.Energy, Stress: j.Stress, Notes: j.Notes}
	if j.Timestamp != nil && strings.TrimSpace(*j.Timestamp) != "" {
		ts, err := contract.ParseTimestamp(*j.Timestamp)
		if err != nil {
			return schema.EntryRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		rec.Timestamp = &ts
	}
	return rec, nil
}

// DecodeJSONRecord decodes a single JSON object into a record.
func DecodeJSONRecord(r io.Reader) (schema.EntryRecord, error) {
	var raw jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return schema.EntryRecord{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return raw.record()
}

// ParseJSONRecords decodes a JSON array of records.
func ParseJSONRecords(r io.Reader) ([]schema.EntryRecord, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	records := make([]schema.EntryRecord, 0, len(raw))
	for i, j := range raw {
		rec, err := j.record()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseCSVRecords reads records from CSV with a header row naming the columns.
// Columns are matched by name: timestamp, mood, energy, stress, notes and optionally id.
// A missing column or an empty cell leaves the field unset.
func ParseCSVRecords(r io.Reader) ([]schema.EntryRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []schema.EntryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		v := strings.TrimSpace(row[i])
		return v, v != ""
	}
	score := func(row []string, name string, line int) (*int, error) {
		v, ok := cell(row, name)
		if !ok {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrMalformedRecord, line, name, v)
		}
		return &n, nil
	}

	records := []schema.EntryRecord{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		var rec schema.EntryRecord
		rec.ID, _ = cell(row, "id")
		if v, ok := cell(row, "timestamp"); ok {
			ts, err := contract.ParseTimestamp(v)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
			}
			rec.Timestamp = &ts
		}
		if rec.Mood, err = score(row, "mood", line); err != nil {
			return nil, err
		}
		if rec.Energy, err = score(row, "energy", line); err != nil {
			return nil, err
		}
		if rec.Stress, err = score(row, "stress", line); err != nil {
			return nil, err
		}
		if i, ok := cols["notes"]; ok && i < len(row) {
			notes := row[i]
			rec.Notes = &notes
		}
		records = append(records, rec)
	}
	return records, nil
}
