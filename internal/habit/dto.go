package habit

import (
	"github.com/saulo-duarte/habits-lambda/internal/stats"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

type CreateHabitDTO struct {
	Name   string    `json:"name"`
	Type   HabitType `json:"type"`
	Target float64   `json:"target"`
	Unit   string    `json:"unit"`
	Color  string    `json:"color"`
}

type ListFilter struct {
	Type         HabitType
	ExcludeVices bool
}

// HabitSummary is a habit with its stats and history strip for one day.
type HabitSummary struct {
	Habit
	stats.Stats
	History []stats.HistoryDay `json:"history"`
}

type DashboardResponse struct {
	Date   util.Date      `json:"date"`
	Habits []HabitSummary `json:"habits"`
}

type HabitDetailsResponse struct {
	Habit     Habit           `json:"habit"`
	Date      util.Date       `json:"date"`
	ChartData stats.ChartData `json:"chart_data"`
}
