package schema

import "time"

// TrendPoint is the trailing time-window average ending at Date.
type TrendPoint struct {
	Date   time.Time `json:"date"`
	Mood   float64   `json:"mood"`
	Energy float64   `json:"energy"`
	Stress float64   `json:"stress"`
	Count  int       `json:"count"` // entries inside the window
}

// TrendResult bundles a rolling trend with the window that produced it.
type TrendResult struct {
	WindowDays  int          `json:"window_days"`
	Granularity Granularity  `json:"granularity"`
	Points      []TrendPoint `json:"points"`
}

// WeeklySummary holds averages over the 7-day window ending at EndDate.
type WeeklySummary struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	AvgMood   float64   `json:"avg_mood"`
	AvgEnergy float64   `json:"avg_energy"`
	AvgStress float64   `json:"avg_stress"`
	Count     int       `json:"count"`
}

// SummaryResult is a weekly summary together with the recent notes of the same window.
// Summary is nil when the window holds no entries.
type SummaryResult struct {
	Summary  *WeeklySummary `json:"summary"`
	TopNotes []string       `json:"top_notes"`
	Text     string         `json:"text"` // human readable block, "No data for this week." when absent
}

// Overview aggregates the whole series.
type Overview struct {
	AvgMood          float64   `json:"avg_mood"`
	AvgEnergy        float64   `json:"avg_energy"`
	AvgStress        float64   `json:"avg_stress"`
	HighestStressDay time.Time `json:"highest_stress_day"`
	LowestEnergyDay  time.Time `json:"lowest_energy_day"`
	FirstDay         time.Time `json:"first_day"`
	LastDay          time.Time `json:"last_day"`
	Count            int       `json:"count"`
}
