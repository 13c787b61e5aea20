package core

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingTrend_StrictTimeWindow(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)

	points, err := s.RollingTrend(2)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.True(t, day(2024, 1, 1).Equal(points[0].Date))
	assert.Equal(t, 2.0, points[0].Mood)
	assert.Equal(t, 1, points[0].Count)

	// 2024-01-01 sits exactly on the open lower bound of (01-01, 01-03].
	assert.True(t, day(2024, 1, 3).Equal(points[1].Date))
	assert.Equal(t, 4.0, points[1].Mood)
	assert.Equal(t, 3.0, points[1].Energy)
	assert.Equal(t, 2.0, points[1].Stress)
	assert.Equal(t, 1, points[1].Count)
}

func TestRollingTrend_WindowCoversHistory(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)

	points, err := s.RollingTrend(3)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 3.0, points[1].Mood)
	assert.Equal(t, 3.0, points[1].Energy)
	assert.Equal(t, 3.0, points[1].Stress)
	assert.Equal(t, 2, points[1].Count)
}

func TestRollingTrend_SameDayCollapsesAtDayGranularity(t *testing.T) {
	in := []schema.Entry{
		entry(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), 1, 1, 1, ""),
		entry(time.Date(2024, 1, 1, 21, 0, 0, 0, time.Local), 4, 2, 5, ""),
		entry(time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local), 3, 3, 3, ""),
	}

	t.Run("day", func(t *testing.T) {
		points, err := NewSeries(in, schema.DayGranularity).RollingTrend(7)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 2.5, points[0].Mood)
		assert.Equal(t, 2, points[0].Count)
		assert.Equal(t, 2.67, points[1].Mood)
		assert.Equal(t, 3, points[1].Count)
	})

	t.Run("instant", func(t *testing.T) {
		points, err := NewSeries(in, schema.InstantGranularity).RollingTrend(7)
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, 1.0, points[0].Mood)
		assert.Equal(t, 2.5, points[1].Mood)
		assert.Equal(t, 2.67, points[2].Mood)
	})

	t.Run("instant window is a duration", func(t *testing.T) {
		// One day back from 2024-01-02 12:00 excludes 2024-01-01 09:00 but keeps 21:00.
		points, err := NewSeries(in, schema.InstantGranularity).RollingTrend(1)
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, 3.5, points[2].Mood)
		assert.Equal(t, 2, points[2].Count)
	})
}

func TestRollingTrend_InvalidWindow(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)
	for _, w := range []int{0, -1, -7} {
		points, err := s.RollingTrend(w)
		assert.Nil(t, points)
		assert.True(t, errors.Is(err, ErrInvalidWindow), "window %d", w)
	}

	// Validation does not depend on data.
	_, err := NewSeries(nil, schema.DayGranularity).RollingTrend(0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestRollingTrend_Empty(t *testing.T) {
	points, err := NewSeries(nil, schema.DayGranularity).RollingTrend(7)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestRollingTrend_Rounding(t *testing.T) {
	in := []schema.Entry{
		entry(day(2024, 1, 1), 1, 1, 1, ""),
		entry(day(2024, 1, 2), 1, 2, 2, ""),
		entry(day(2024, 1, 3), 2, 2, 2, ""),
	}
	points, err := NewSeries(in, schema.DayGranularity).RollingTrend(7)
	require.NoError(t, err)
	assert.Equal(t, 1.33, points[2].Mood)
	assert.Equal(t, 1.67, points[2].Energy)
}

// randomEntries creates irregularly spaced entries, some sharing a timestamp.
func randomEntries(rng *rand.Rand, n int) []schema.Entry {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	out := make([]schema.Entry, n)
	for i := range out {
		ts := start.Add(time.Duration(rng.IntN(60*24)) * time.Hour / 4)
		out[i] = entry(ts, rng.IntN(5)+1, rng.IntN(5)+1, rng.IntN(5)+1, "")
	}
	return out
}

func TestRollingTrend_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for _, g := range []schema.Granularity{schema.DayGranularity, schema.InstantGranularity} {
		for trial := range 25 {
			s := NewSeries(randomEntries(rng, 1+rng.IntN(80)), g)
			window := 1 + rng.IntN(10)

			points, err := s.RollingTrend(window)
			require.NoError(t, err)

			distinct := map[time.Time]struct{}{}
			for _, e := range s.Entries() {
				distinct[e.Timestamp] = struct{}{}
			}
			require.Len(t, points, len(distinct), "granularity %s trial %d", g, trial)

			for i, p := range points {
				if i > 0 {
					assert.True(t, points[i-1].Date.Before(p.Date))
				}
				// Mean boundedness against a brute force window scan.
				lower := p.Date.AddDate(0, 0, -window)
				lo, hi, n := 6, 0, 0
				for _, e := range s.Entries() {
					if e.Timestamp.After(lower) && !e.Timestamp.After(p.Date) {
						lo, hi, n = min(lo, e.Mood), max(hi, e.Mood), n+1
					}
				}
				assert.Equal(t, n, p.Count)
				assert.GreaterOrEqual(t, p.Mood, float64(lo))
				assert.LessOrEqual(t, p.Mood, float64(hi))
			}
		}
	}
}
