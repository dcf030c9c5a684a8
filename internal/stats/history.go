package stats

import (
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

const HistoryDays = 5

type HistoryDay struct {
	Weekday     string    `json:"date"`
	Date        util.Date `json:"full_date"`
	Completed   bool      `json:"completed"`
	IsToday     bool      `json:"is_today"`
	FillPercent float64   `json:"fill_percent"`
}

// ComputeHistory returns the strip of HistoryDays days ending at ref, oldest first.
func ComputeHistory(target float64, logs LogMap, ref util.Date) []HistoryDay {
	history := make([]HistoryDay, 0, HistoryDays)
	for i := HistoryDays - 1; i >= 0; i-- {
		day := ref.AddDays(-i)
		value := logs.ValueAt(day)
		history = append(history, HistoryDay{
			Weekday:     day.WeekdayAbbr(),
			Date:        day,
			Completed:   value >= target,
			IsToday:     i == 0,
			FillPercent: FillPercent(value, target),
		})
	}
	return history
}
