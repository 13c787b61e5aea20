package core

import (
	"testing"
	"time"

	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySummary_WorkedExample(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)

	summary, ok := s.WeeklySummary(day(2024, 1, 3))
	require.True(t, ok)
	assert.Equal(t, "2023-12-28", summary.StartDate.Format(schema.DateFormat))
	assert.Equal(t, "2024-01-03", summary.EndDate.Format(schema.DateFormat))
	assert.Equal(t, 3.0, summary.AvgMood)
	assert.Equal(t, 3.0, summary.AvgEnergy)
	assert.Equal(t, 3.0, summary.AvgStress)
	assert.Equal(t, 2, summary.Count)
}

func TestWeeklySummary_DefaultEndIsLatest(t *testing.T) {
	in := []schema.Entry{
		entry(time.Date(2024, 1, 1, 7, 0, 0, 0, time.Local), 1, 2, 3, ""),
		entry(time.Date(2024, 1, 9, 22, 0, 0, 0, time.Local), 5, 4, 1, ""),
		entry(time.Date(2024, 1, 12, 13, 0, 0, 0, time.Local), 2, 2, 2, ""),
	}
	for _, g := range []schema.Granularity{schema.DayGranularity, schema.InstantGranularity} {
		s := NewSeries(in, g)
		implicit, ok1 := s.WeeklySummary(time.Time{})
		explicit, ok2 := s.WeeklySummary(s.Latest())
		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, explicit, implicit, "granularity %s", g)
		assert.Equal(t, 2, implicit.Count)
		assert.Equal(t, 3.5, implicit.AvgMood)
	}
}

func TestWeeklySummary_InclusiveBounds(t *testing.T) {
	in := []schema.Entry{
		entry(day(2024, 1, 3), 1, 1, 1, ""),  // start bound, included
		entry(day(2024, 1, 2), 5, 5, 5, ""),  // one day before start, excluded
		entry(day(2024, 1, 9), 3, 3, 3, ""),  // end bound, included
		entry(day(2024, 1, 10), 5, 5, 5, ""), // after end, excluded
	}
	s := NewSeries(in, schema.InstantGranularity)

	summary, ok := s.WeeklySummary(time.Date(2024, 1, 9, 8, 0, 0, 0, time.Local))
	require.True(t, ok)
	assert.True(t, day(2024, 1, 9).Equal(summary.EndDate))
	assert.True(t, day(2024, 1, 3).Equal(summary.StartDate))
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 2.0, summary.AvgMood)
}

func TestWeeklySummary_Absent(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		_, ok := NewSeries(nil, schema.DayGranularity).WeeklySummary(time.Time{})
		assert.False(t, ok)
	})
	t.Run("end predates all data", func(t *testing.T) {
		_, ok := NewSeries(twoDayFixture(), schema.DayGranularity).WeeklySummary(day(2023, 6, 1))
		assert.False(t, ok)
	})
}

func TestWeeklySummary_DuplicatesIncluded(t *testing.T) {
	in := []schema.Entry{
		entry(day(2024, 1, 1), 1, 1, 1, ""),
		entry(day(2024, 1, 1), 2, 2, 2, ""),
		entry(day(2024, 1, 1), 2, 2, 2, ""),
	}
	summary, ok := NewSeries(in, schema.DayGranularity).WeeklySummary(time.Time{})
	require.True(t, ok)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 1.67, summary.AvgMood)
}

func TestWeeklySummary_Idempotent(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)
	a, okA := s.WeeklySummary(day(2024, 1, 2))
	b, okB := s.WeeklySummary(day(2024, 1, 2))
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
	assert.Equal(t, s.FormatWeeklySummary(time.Time{}), s.FormatWeeklySummary(time.Time{}))
}

func TestFormatWeeklySummary(t *testing.T) {
	s := NewSeries(twoDayFixture(), schema.DayGranularity)
	want := "Weekly Summary (Most Recent)\n" +
		"Start Date: 2023-12-28\n" +
		"End Date:   2024-01-03\n" +
		"Average Mood:   3.00\n" +
		"Average Energy: 3.00\n" +
		"Average Stress: 3.00"
	assert.Equal(t, want, s.FormatWeeklySummary(time.Time{}))

	assert.Equal(t, NoWeeklyData, NewSeries(nil, schema.DayGranularity).FormatWeeklySummary(time.Time{}))
	assert.Equal(t, NoWeeklyData, s.FormatWeeklySummary(day(2020, 1, 1)))
}

func TestTopNotes(t *testing.T) {
	in := []schema.Entry{
		entry(day(2023, 12, 20), 3, 3, 3, "too old"),
		entry(day(2024, 1, 1), 3, 3, 3, "new year"),
		entry(day(2024, 1, 2), 3, 3, 3, "   "),
		entry(day(2024, 1, 2), 3, 3, 3, ""),
		entry(day(2024, 1, 3), 3, 3, 3, "  padded  "),
		entry(day(2024, 1, 3), 3, 3, 3, "same day later"),
	}
	s := NewSeries(in, schema.DayGranularity)

	t.Run("most recent first, blanks dropped", func(t *testing.T) {
		assert.Equal(t, []string{"same day later", "padded", "new year"}, s.TopNotes(time.Time{}, 0))
	})

	t.Run("limit truncates", func(t *testing.T) {
		assert.Equal(t, []string{"same day later"}, s.TopNotes(time.Time{}, 1))
	})

	t.Run("explicit end", func(t *testing.T) {
		assert.Equal(t, []string{"too old"}, s.TopNotes(day(2023, 12, 21), 6))
	})

	t.Run("empty", func(t *testing.T) {
		notes := NewSeries(nil, schema.DayGranularity).TopNotes(time.Time{}, 6)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("default limit is six", func(t *testing.T) {
		var many []schema.Entry
		for i := range 10 {
			many = append(many, entry(day(2024, 1, 1).Add(time.Duration(i)*time.Hour), 1, 1, 1, "n"))
		}
		assert.Len(t, NewSeries(many, schema.InstantGranularity).TopNotes(time.Time{}, -1), DefaultNotesLimit)
	})
}

func TestOverview(t *testing.T) {
	in := []schema.Entry{
		entry(day(2024, 1, 1), 2, 1, 5, ""),
		entry(day(2024, 1, 2), 4, 1, 5, ""),
		entry(day(2024, 1, 4), 3, 4, 2, ""),
	}
	o, ok := NewSeries(in, schema.DayGranularity).Overview()
	require.True(t, ok)
	assert.Equal(t, 3.0, o.AvgMood)
	assert.Equal(t, 2.0, o.AvgEnergy)
	assert.Equal(t, 4.0, o.AvgStress)
	assert.True(t, day(2024, 1, 1).Equal(o.HighestStressDay), "first maximum wins")
	assert.True(t, day(2024, 1, 1).Equal(o.LowestEnergyDay), "first minimum wins")
	assert.True(t, day(2024, 1, 1).Equal(o.FirstDay))
	assert.True(t, day(2024, 1, 4).Equal(o.LastDay))
	assert.Equal(t, 3, o.Count)

	_, ok = NewSeries(nil, schema.DayGranularity).Overview()
	assert.False(t, ok)
}
