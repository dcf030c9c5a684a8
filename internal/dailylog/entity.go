package dailylog

import (
	"github.com/google/uuid"

	"github.com/saulo-duarte/habits-lambda/internal/habit"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

type DailyLog struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID uuid.UUID   `gorm:"type:uuid;not null;index:idx_daily_logs_habit_date,priority:1" json:"habit_id"`
	Habit   habit.Habit `gorm:"foreignKey:HabitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Date    util.Date   `gorm:"type:date;not null;index:idx_daily_logs_habit_date,priority:2" json:"date"`
	Value   float64     `gorm:"not null" json:"value"`
	// Target of the habit when the day was first logged.
	HistoricalTarget *float64 `json:"historical_target,omitempty"`
}
