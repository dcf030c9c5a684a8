package dailylog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/habits-lambda/internal/stats"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	ListByHabit(ctx context.Context, habitID uuid.UUID) ([]DailyLog, error)
	LogMap(ctx context.Context, habitID uuid.UUID) (stats.LogMap, error)
	FindByHabitAndDate(ctx context.Context, habitID uuid.UUID, date util.Date) (*DailyLog, error)
	Accumulate(ctx context.Context, habitID uuid.UUID, date util.Date, amount, target float64) (*DailyLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByHabit(ctx context.Context, habitID uuid.UUID) ([]DailyLog, error) {
	var logs []DailyLog
	if err := r.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *repository) LogMap(ctx context.Context, habitID uuid.UUID) (stats.LogMap, error) {
	logs, err := r.ListByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	m := make(stats.LogMap, len(logs))
	for _, l := range logs {
		m[l.Date.String()] += l.Value
	}
	return m, nil
}

func (r *repository) FindByHabitAndDate(ctx context.Context, habitID uuid.UUID, date util.Date) (*DailyLog, error) {
	return findByHabitAndDate(r.db.WithContext(ctx), habitID, date)
}

func findByHabitAndDate(db *gorm.DB, habitID uuid.UUID, date util.Date) (*DailyLog, error) {
	var log DailyLog
	if err := db.First(&log, "habit_id = ? AND date = ?", habitID, date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Accumulate adds amount to the day's row, creating it when the day has no
// log yet. target is recorded as the row's historical target on creation.
func (r *repository) Accumulate(ctx context.Context, habitID uuid.UUID, date util.Date, amount, target float64) (*DailyLog, error) {
	var result *DailyLog

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByHabitAndDate(tx, habitID, date)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		if existing == nil {
			log := &DailyLog{
				ID:               uuid.New(),
				HabitID:          habitID,
				Date:             date,
				Value:            amount,
				HistoricalTarget: &target,
			}
			if err := tx.Create(log).Error; err != nil {
				return err
			}
			result = log
			return nil
		}

		if err := tx.Model(&DailyLog{}).
			Where("id = ?", existing.ID).
			Update("value", gorm.Expr("value + ?", amount)).Error; err != nil {
			return err
		}

		result, err = findByHabitAndDate(tx, habitID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
