package stats

import (
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

type ShieldMaterial string

const (
	ShieldWood   ShieldMaterial = "wood"
	ShieldIron   ShieldMaterial = "iron"
	ShieldGold   ShieldMaterial = "gold"
	ShieldEnergy ShieldMaterial = "energy"
)

// LogMap holds one habit's logged values keyed by ISO date. Missing days are 0.
type LogMap map[string]float64

func (m LogMap) ValueAt(d util.Date) float64 {
	return m[d.String()]
}

// Earliest returns the oldest parseable date in the map.
func (m LogMap) Earliest() (util.Date, bool) {
	var earliest util.Date
	found := false
	for key := range m {
		d, err := util.ParseDate(key)
		if err != nil {
			continue
		}
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

type Stats struct {
	Streak         int            `json:"streak"`
	FillPercent    float64        `json:"fill_percent"`
	IsCompleted    bool           `json:"is_completed"`
	TodayValue     float64        `json:"today_value"`
	ShieldMaterial ShieldMaterial `json:"shield_material"`
}

// ComputeStats derives streak, completion and badge state for ref.
//
// The streak is counted backward from the day before ref and stops at the
// first day below target; ref itself only adds one when it is completed, so an
// unfinished day never resets the run that precedes it.
func ComputeStats(target float64, logs LogMap, ref util.Date) Stats {
	if len(logs) == 0 {
		return Stats{ShieldMaterial: ShieldWood}
	}

	todayValue := logs.ValueAt(ref)
	isCompleted := todayValue >= target

	streak := 0
	if earliest, ok := logs.Earliest(); ok {
		for day := ref.AddDays(-1); !day.Before(earliest); day = day.AddDays(-1) {
			if logs.ValueAt(day) < target {
				break
			}
			streak++
		}
	}

	if isCompleted {
		streak++
	}

	return Stats{
		Streak:         streak,
		FillPercent:    FillPercent(todayValue, target),
		IsCompleted:    isCompleted,
		TodayValue:     todayValue,
		ShieldMaterial: ShieldFor(streak),
	}
}

// FillPercent is value as a share of target, capped at 100. A non-positive
// target reads as full once anything has been logged.
func FillPercent(value, target float64) float64 {
	if target > 0 {
		return min(100, value/target*100)
	}
	if value == 0 {
		return 0
	}
	return 100
}

func ShieldFor(streak int) ShieldMaterial {
	switch {
	case streak >= 60:
		return ShieldEnergy
	case streak >= 30:
		return ShieldGold
	case streak >= 14:
		return ShieldIron
	default:
		return ShieldWood
	}
}
