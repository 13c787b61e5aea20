package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// TestParseRelativeTimeUnit covers various valid and invalid cases.
func TestParseRelativeTimeUnit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "valid plural months (mixed case)",
			input:    "3 MoNtHs AgO",
			expected: fixedNow.AddDate(0, -3, 0),
		},
		{
			name:     "valid singular week (capitalized)",
			input:    "1 Week Ago",
			expected: fixedNow.AddDate(0, 0, -7),
		},
		{
			name:     "valid 10 days (upper case)",
			input:    "10 DAYS AGO",
			expected: fixedNow.AddDate(0, 0, -10),
		},
		{
			name:     "hours",
			input:    "5 hours ago",
			expected: fixedNow.Add(-5 * time.Hour),
		},
		{
			name:        "invalid missing ago",
			input:       "2 years",
			expectError: true,
		},
		{
			name:        "invalid bad unit (decades)",
			input:       "4 decades ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one day ago",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tResult, err := ParseRelativeTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(tResult), "Parsed time mismatch: %s", tResult)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2024-01-02T08:30:00Z", time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-01-02T08:30:00+02:00", time.Date(2024, 1, 2, 6, 30, 0, 0, time.UTC)},
		{"local datetime", "2024-01-02 08:30:00", time.Date(2024, 1, 2, 8, 30, 0, 0, time.Local)},
		{"local datetime with T", "2024-01-02T08:30:00", time.Date(2024, 1, 2, 8, 30, 0, 0, time.Local)},
		{"minutes only", "2024-01-02 08:30", time.Date(2024, 1, 2, 8, 30, 0, 0, time.Local)},
		{"date only", " 2024-01-02 ", time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}

	_, err := ParseTimestamp("02/01/2024")
	assert.Error(t, err)
}

func TestParseDateInput(t *testing.T) {
	got, err := ParseDateInput("today", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, got)

	got, err = ParseDateInput("Yesterday", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 0, -1), got)

	got, err = ParseDateInput("3 days ago", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 0, -3), got)

	got, err = ParseDateInput("2024-05-06", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Day())

	_, err = ParseDateInput("", fixedNow)
	assert.Error(t, err)
	_, err = ParseDateInput("long ago", fixedNow)
	assert.Error(t, err)
}

// FuzzParseRelativeTime fuzzes the ParseRelativeTime function with random inputs.
func FuzzParseRelativeTime(f *testing.F) {
	seeds := []string{
		"1 year ago",
		"2 months ago",
		"3 weeks ago",
		"4 days ago",
		"5 hours ago",
		"6 minutes ago",
		"0 days ago", // edge case
		"99999999999999999999 days ago",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, err := ParseRelativeTime(input, time.Now())
		// We don't assert on the result, just that it doesn't panic
		_ = err
	})
}
