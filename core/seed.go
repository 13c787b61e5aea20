package core

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/huangsam/moodtrack/schema"
)

// DefaultSeedRows is the number of demo entries written by the seed command.
const DefaultSeedRows = 21

// SeedEntries builds one demo entry per day, ending at now and going back rows-1 days.
// Scores are uniform in 1-5.
func SeedEntries(now time.Time, rows int, rng *rand.Rand) []schema.Entry {
	entries := make([]schema.Entry, 0, max(rows, 0))
	for i := range rows {
		entries = append(entries, schema.Entry{
			Timestamp: now.AddDate(0, 0, -i),
			Mood:      rng.IntN(5) + 1,
			Energy:    rng.IntN(5) + 1,
			Stress:    rng.IntN(5) + 1,
			Notes:     fmt.Sprintf("Demo note %d", i),
		})
	}
	return entries
}
