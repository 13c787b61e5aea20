package core

import (
	"strings"
	"time"
)

// TopNotes returns the non-blank notes of the weekly window ending at end, most recent first.
// A non-positive limit falls back to DefaultNotesLimit.
func (s *Series) TopNotes(end time.Time, limit int) []string {
	if limit <= 0 {
		limit = DefaultNotesLimit
	}
	notes := []string{}
	if s.Empty() {
		return notes
	}
	start, last := s.weekBounds(end)

	// Walking backwards yields newest first; equal timestamps keep later input first.
	for i := len(s.entries) - 1; i >= 0 && len(notes) < limit; i-- {
		e := s.entries[i]
		if !inWeek(e, start, last) {
			continue
		}
		if note := strings.TrimSpace(e.Notes); note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}
