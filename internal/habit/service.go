package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/stats"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrInvalidID        = errors.New("invalid id format")
	ErrNameRequired     = errors.New("habit name is required")
	ErrInvalidHabitType = errors.New("invalid habit type")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// LogReader supplies the logged values of one habit keyed by ISO date.
type LogReader interface {
	LogMap(ctx context.Context, habitID uuid.UUID) (stats.LogMap, error)
}

type Service interface {
	Create(ctx context.Context, dto CreateHabitDTO) (*Habit, error)
	List(ctx context.Context, filter ListFilter) ([]Habit, error)
	Get(ctx context.Context, id string) (*Habit, error)
	Dashboard(ctx context.Context, date util.Date, filter ListFilter) (*DashboardResponse, error)
	Summary(ctx context.Context, id string, date util.Date) (*HabitSummary, error)
	Details(ctx context.Context, id string, date util.Date) (*HabitDetailsResponse, error)
}

type service struct {
	repo Repository
	logs LogReader
}

func NewService(repo Repository, logs LogReader) Service {
	return &service{repo: repo, logs: logs}
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func parseID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid habit ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *service) Create(ctx context.Context, dto CreateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !dto.Type.IsValid() {
		log.WithField("type", dto.Type).Warn("Rejected habit with unknown type")
		return nil, ErrInvalidHabitType
	}

	h := &Habit{
		ID:     uuid.New(),
		Name:   name,
		Type:   dto.Type,
		Target: dto.Target,
		Unit:   dto.Unit,
		Color:  dto.Color,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, storeError(err)
	}

	log.WithField("habit_id", h.ID).Info("Habit created successfully")
	return h, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Habit, error) {
	log := config.WithContext(ctx)

	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, ErrInvalidHabitType
	}

	habits, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		return nil, storeError(err)
	}
	return habits, nil
}

func (s *service) Get(ctx context.Context, id string) (*Habit, error) {
	log := config.WithContext(ctx)

	habitID, err := parseID(log, id)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, log, habitID)
}

func (s *service) find(ctx context.Context, log logrus.FieldLogger, id uuid.UUID) (*Habit, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("habit_id", id).Warn("Habit not found")
			return nil, ErrHabitNotFound
		}
		log.WithError(err).Error("Error finding habit by ID")
		return nil, storeError(err)
	}
	return h, nil
}

func (s *service) summarize(ctx context.Context, h Habit, date util.Date) (HabitSummary, error) {
	logs, err := s.logs.LogMap(ctx, h.ID)
	if err != nil {
		return HabitSummary{}, storeError(err)
	}
	return HabitSummary{
		Habit:   h,
		Stats:   stats.ComputeStats(h.Target, logs, date),
		History: stats.ComputeHistory(h.Target, logs, date),
	}, nil
}

func (s *service) Dashboard(ctx context.Context, date util.Date, filter ListFilter) (*DashboardResponse, error) {
	log := config.WithContext(ctx)

	habits, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		summary, err := s.summarize(ctx, h, date)
		if err != nil {
			log.WithError(err).WithField("habit_id", h.ID).Error("Failed to load habit logs")
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return &DashboardResponse{Date: date, Habits: summaries}, nil
}

func (s *service) Summary(ctx context.Context, id string, date util.Date) (*HabitSummary, error) {
	log := config.WithContext(ctx)

	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, *h, date)
	if err != nil {
		log.WithError(err).WithField("habit_id", h.ID).Error("Failed to load habit logs")
		return nil, err
	}
	return &summary, nil
}

func (s *service) Details(ctx context.Context, id string, date util.Date) (*HabitDetailsResponse, error) {
	log := config.WithContext(ctx)

	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.LogMap(ctx, h.ID)
	if err != nil {
		log.WithError(err).WithField("habit_id", h.ID).Error("Failed to load habit logs")
		return nil, storeError(err)
	}

	return &HabitDetailsResponse{
		Habit:     *h,
		Date:      date,
		ChartData: stats.ComputeChartData(h.Type.IsBinary(), h.Target, logs, date),
	}, nil
}
