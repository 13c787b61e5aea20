package schema

import "time"

// Entry is one mood check-in as persisted by the entry store.
// Scores are expected in 1-5 but that range is a caller contract.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Stress    int       `json:"stress"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryRecord is a loosely shaped inbound entry (JSON body, CSV row, tool arguments).
// Nil fields mean the value was not supplied at all.
type EntryRecord struct {
	ID        string     `json:"id,omitempty"`
	Timestamp *time.Time `json:"timestamp"`
	Mood      *int       `json:"mood"`
	Energy    *int       `json:"energy"`
	Stress    *int       `json:"stress"`
	Notes     *string    `json:"notes,omitempty"`
}

// Day returns the local calendar day of the entry.
func (e Entry) Day() time.Time {
	return TruncateDay(e.Timestamp)
}

// TruncateDay returns local midnight of the day containing t.
// Days are always counted in time.Local, the zone the stores return timestamps in.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
