package dailylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

var (
	ErrHabitNotFound    = habit.ErrHabitNotFound
	ErrInvalidID        = habit.ErrInvalidID
	ErrStoreUnavailable = habit.ErrStoreUnavailable
)

type Service interface {
	LogProgress(ctx context.Context, habitID string, date util.Date, amount float64) (*LogResult, error)
	ListByHabit(ctx context.Context, habitID string) ([]DailyLog, error)
}

type service struct {
	repo      Repository
	habitRepo habit.Repository
}

func NewService(repo Repository, habitRepo habit.Repository) Service {
	return &service{repo: repo, habitRepo: habitRepo}
}

func (s *service) findHabit(ctx context.Context, log logrus.FieldLogger, id string) (*habit.Habit, error) {
	habitID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid habit ID")
		return nil, ErrInvalidID
	}

	h, err := s.habitRepo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, habit.ErrNotFound) {
			log.WithField("habit_id", id).Warn("Habit not found")
			return nil, ErrHabitNotFound
		}
		log.WithError(err).Error("Error finding habit by ID")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return h, nil
}

// EventFor labels a log action. Vices are never completed; logging one is a
// deflection regardless of the amount.
func EventFor(h *habit.Habit, newValue float64) EventType {
	if h.Type == habit.HabitTypeVice {
		return EventDeflected
	}
	if newValue >= h.Target {
		return EventCompleted
	}
	return EventNone
}

func (s *service) LogProgress(ctx context.Context, habitID string, date util.Date, amount float64) (*LogResult, error) {
	log := config.WithContext(ctx)

	h, err := s.findHabit(ctx, log, habitID)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.Accumulate(ctx, h.ID, date, amount, h.Target)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"habit_id": h.ID,
			"date":     date.String(),
		}).Error("Failed to log progress")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result := &LogResult{
		HabitID: h.ID,
		Date:    date,
		Value:   entry.Value,
		Event:   EventFor(h, entry.Value),
	}

	log.WithFields(logrus.Fields{
		"habit_id": h.ID,
		"date":     date.String(),
		"value":    entry.Value,
		"event":    result.Event,
	}).Info("Progress logged")
	return result, nil
}

func (s *service) ListByHabit(ctx context.Context, habitID string) ([]DailyLog, error) {
	log := config.WithContext(ctx)

	h, err := s.findHabit(ctx, log, habitID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.ListByHabit(ctx, h.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list logs by habit")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return logs, nil
}
