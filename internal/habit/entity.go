package habit

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Type      HabitType `gorm:"type:text;not null" json:"type"`
	Target    float64   `gorm:"not null" json:"target"`
	Unit      string    `gorm:"type:text" json:"unit,omitempty"`
	Color     string    `gorm:"type:text" json:"color,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
