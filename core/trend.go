package core

import (
	"fmt"

	"github.com/huangsam/moodtrack/schema"
)

// RollingTrend computes a trailing time-window average for every distinct timestamp.
// The window ending at t covers (t - windowDays days, t]; it is time based, not row based.
func (s *Series) RollingTrend(windowDays int) ([]schema.TrendPoint, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, windowDays)
	}
	points := []schema.TrendPoint{}
	var sums scoreSums
	left := 0
	for right := 0; right < len(s.entries); {
		t := s.entries[right].Timestamp

		// Pull in every entry sharing this timestamp.
		for right < len(s.entries) && s.entries[right].Timestamp.Equal(t) {
			sums.add(s.entries[right])
			right++
		}

		lower := t.AddDate(0, 0, -windowDays)
		for left < right && !s.entries[left].Timestamp.After(lower) {
			sums.remove(s.entries[left])
			left++
		}

		mood, energy, stress := sums.means()
		points = append(points, schema.TrendPoint{
			Date:   t,
			Mood:   mood,
			Energy: energy,
			Stress: stress,
			Count:  sums.n,
		})
	}
	return points, nil
}
