package dailylog

import (
	"github.com/google/uuid"

	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

type LogResult struct {
	HabitID uuid.UUID `json:"habit_id"`
	Date    util.Date `json:"date"`
	Value   float64   `json:"value"`
	Event   EventType `json:"event,omitempty"`
}
