// Package core has the trend engine and the command orchestration built on it.
package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/huangsam/moodtrack/schema"
)

// Engine defaults.
const (
	DefaultWindowDays = 7
	DefaultNotesLimit = 6
	weekSpanDays      = 6 // a week window is [end-6d, end]
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidWindow is returned when a rolling window is not a positive number of days.
	ErrInvalidWindow = errors.New("window days must be positive")

	// ErrMalformedRecord is returned when a record lacks a required field.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidJSON is returned when a JSON payload does not decode. It wraps ErrMalformedRecord.
	ErrInvalidJSON = fmt.Errorf("%w: invalid JSON", ErrMalformedRecord)
)

// Series is an immutable, ascending sequence of entries.
// Timestamps are moved to time.Local and normalized once according to the series granularity.
type Series struct {
	entries     []schema.Entry
	granularity schema.Granularity
}

// NewSeries builds a series from complete entries. The input slice is not modified.
func NewSeries(entries []schema.Entry, g schema.Granularity) *Series {
	if g == "" {
		g = schema.DayGranularity
	}
	normalized := make([]schema.Entry, len(entries))
	for i, e := range entries {
		e.Timestamp = e.Timestamp.In(time.Local)
		if g == schema.DayGranularity {
			e.Timestamp = schema.TruncateDay(e.Timestamp)
		}
		normalized[i] = e
	}
	slices.SortStableFunc(normalized, func(a, b schema.Entry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return &Series{entries: normalized, granularity: g}
}

// FromRecords converts loosely shaped records and builds a series.
// Any record missing a required field fails the whole call.
func FromRecords(records []schema.EntryRecord, g schema.Granularity) (*Series, error) {
	entries := make([]schema.Entry, 0, len(records))
	for i, r := range records {
		e, err := EntryFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return NewSeries(entries, g), nil
}

// EntryFromRecord validates that every required field is present and returns the typed entry.
func EntryFromRecord(r schema.EntryRecord) (schema.Entry, error) {
	switch {
	case r.Timestamp == nil || r.Timestamp.IsZero():
		return schema.Entry{}, fmt.Errorf("%w: missing timestamp", ErrMalformedRecord)
	case r.Mood == nil:
		return schema.Entry{}, fmt.Errorf("%w: missing mood", ErrMalformedRecord)
	case r.Energy == nil:
		return schema.Entry{}, fmt.Errorf("%w: missing energy", ErrMalformedRecord)
	case r.Stress == nil:
		return schema.Entry{}, fmt.Errorf("%w: missing stress", ErrMalformedRecord)
	}
	e := schema.Entry{
		ID:        r.ID,
		Timestamp: *r.Timestamp,
		Mood:      *r.Mood,
		Energy:    *r.Energy,
		Stress:    *r.Stress,
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
	return e, nil
}

// Len returns the number of entries in the series.
func (s *Series) Len() int {
	return len(s.entries)
}

// Empty reports whether the series holds no entries.
func (s *Series) Empty() bool {
	return len(s.entries) == 0
}

// Granularity returns the timestamp granularity of the series.
func (s *Series) Granularity() schema.Granularity {
	return s.granularity
}

// Entries returns a copy of the ordered entries.
func (s *Series) Entries() []schema.Entry {
	return slices.Clone(s.entries)
}

// Latest returns the maximum timestamp, or the zero time for an empty series.
func (s *Series) Latest() time.Time {
	if s.Empty() {
		return time.Time{}
	}
	return s.entries[len(s.entries)-1].Timestamp
}

// weekBounds resolves the calendar-day window ending at end, defaulting to the latest entry.
func (s *Series) weekBounds(end time.Time) (start, last time.Time) {
	if end.IsZero() {
		end = s.Latest()
	}
	last = schema.TruncateDay(end)
	return last.AddDate(0, 0, -weekSpanDays), last
}

// inWeek reports whether the entry's day lies in [start, last].
func inWeek(e schema.Entry, start, last time.Time) bool {
	day := e.Day()
	return !day.Before(start) && !day.After(last)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// scoreSums accumulates the three scores.
type scoreSums struct {
	mood, energy, stress int
	n                    int
}

func (s *scoreSums) add(e schema.Entry) {
	s.mood += e.Mood
	s.energy += e.Energy
	s.stress += e.Stress
	s.n++
}

func (s *scoreSums) remove(e schema.Entry) {
	s.mood -= e.Mood
	s.energy -= e.Energy
	s.stress -= e.Stress
	s.n--
}

func (s *scoreSums) means() (mood, energy, stress float64) {
	if s.n == 0 {
		return 0, 0, 0
	}
	n := float64(s.n)
	return round2(float64(s.mood) / n), round2(float64(s.energy) / n), round2(float64(s.stress) / n)
}
