package dailylog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/habits-lambda/internal/dailylog"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	"github.com/saulo-duarte/habits-lambda/internal/testutil"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

func setupService(t *testing.T) (dailylog.Service, habit.Repository, dailylog.Repository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	habits := habit.NewRepository(db)
	logs := dailylog.NewRepository(db)
	return dailylog.NewService(logs, habits), habits, logs
}

func TestEventFor(t *testing.T) {
	numeric := &habit.Habit{Type: habit.HabitTypeNumeric, Target: 8}
	vice := &habit.Habit{Type: habit.HabitTypeVice, Target: 1}

	t.Run("abaixo da meta", func(t *testing.T) {
		require.Equal(t, dailylog.EventNone, dailylog.EventFor(numeric, 7))
	})
	t.Run("meta atingida", func(t *testing.T) {
		require.Equal(t, dailylog.EventCompleted, dailylog.EventFor(numeric, 8))
	})
	t.Run("vício sempre desviado", func(t *testing.T) {
		require.Equal(t, dailylog.EventDeflected, dailylog.EventFor(vice, 0))
		require.Equal(t, dailylog.EventDeflected, dailylog.EventFor(vice, 5))
	})
}

func TestLogProgress(t *testing.T) {
	svc, habits, logs := setupService(t)
	ctx := context.Background()
	day := util.NewDate(2024, time.June, 12)

	h := createHabit(t, habits, habit.HabitTypeNumeric, 8)

	res, err := svc.LogProgress(ctx, h.ID.String(), day, 5)
	require.NoError(t, err)
	require.Equal(t, 5.0, res.Value)
	require.Equal(t, dailylog.EventNone, res.Event)

	res, err = svc.LogProgress(ctx, h.ID.String(), day, 3)
	require.NoError(t, err)
	require.Equal(t, 8.0, res.Value)
	require.Equal(t, dailylog.EventCompleted, res.Event)
	require.Equal(t, h.ID, res.HabitID)
	require.True(t, res.Date.Equal(day))

	stored, err := logs.ListByHabit(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestLogProgressVice(t *testing.T) {
	svc, habits, _ := setupService(t)

	h := createHabit(t, habits, habit.HabitTypeVice, 1)

	res, err := svc.LogProgress(context.Background(), h.ID.String(), util.NewDate(2024, time.June, 12), 1)
	require.NoError(t, err)
	require.Equal(t, dailylog.EventDeflected, res.Event)
}

func TestLogProgressErrors(t *testing.T) {
	svc, _, logs := setupService(t)
	ctx := context.Background()
	day := util.NewDate(2024, time.June, 12)

	t.Run("id inválido", func(t *testing.T) {
		_, err := svc.LogProgress(ctx, "not-a-uuid", day, 1)
		require.ErrorIs(t, err, dailylog.ErrInvalidID)
	})

	t.Run("hábito inexistente não cria registro", func(t *testing.T) {
		missing := uuid.New()
		_, err := svc.LogProgress(ctx, missing.String(), day, 1)
		require.ErrorIs(t, err, dailylog.ErrHabitNotFound)

		stored, err := logs.ListByHabit(ctx, missing)
		require.NoError(t, err)
		require.Empty(t, stored)
	})
}

func TestListByHabit(t *testing.T) {
	svc, habits, _ := setupService(t)
	ctx := context.Background()

	h := createHabit(t, habits, habit.HabitTypeBinary, 1)
	_, err := svc.LogProgress(ctx, h.ID.String(), util.NewDate(2024, time.June, 11), 1)
	require.NoError(t, err)
	_, err = svc.LogProgress(ctx, h.ID.String(), util.NewDate(2024, time.June, 10), 1)
	require.NoError(t, err)

	got, err := svc.ListByHabit(ctx, h.ID.String())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2024-06-10", got[0].Date.String())
	require.Equal(t, "2024-06-11", got[1].Date.String())

	_, err = svc.ListByHabit(ctx, uuid.NewString())
	require.ErrorIs(t, err, dailylog.ErrHabitNotFound)
}

var errBroken = errors.New("database is closed")

type brokenLogRepository struct {
	dailylog.Repository
}

func (brokenLogRepository) Accumulate(context.Context, uuid.UUID, util.Date, float64, float64) (*dailylog.DailyLog, error) {
	return nil, errBroken
}

func (brokenLogRepository) ListByHabit(context.Context, uuid.UUID) ([]dailylog.DailyLog, error) {
	return nil, errBroken
}

type brokenHabitRepository struct {
	habit.Repository
}

func (brokenHabitRepository) FindByID(context.Context, uuid.UUID) (*habit.Habit, error) {
	return nil, errBroken
}

func TestLogProgressStoreFailures(t *testing.T) {
	ctx := context.Background()
	day := util.NewDate(2024, time.June, 12)

	t.Run("falha ao gravar", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		habits := habit.NewRepository(db)
		h := createHabit(t, habits, habit.HabitTypeNumeric, 8)
		svc := dailylog.NewService(brokenLogRepository{}, habits)

		_, err := svc.LogProgress(ctx, h.ID.String(), day, 1)
		require.ErrorIs(t, err, dailylog.ErrStoreUnavailable)

		_, err = svc.ListByHabit(ctx, h.ID.String())
		require.ErrorIs(t, err, dailylog.ErrStoreUnavailable)
	})

	t.Run("falha ao buscar hábito", func(t *testing.T) {
		svc := dailylog.NewService(brokenLogRepository{}, brokenHabitRepository{})

		_, err := svc.LogProgress(ctx, uuid.NewString(), day, 1)
		require.ErrorIs(t, err, dailylog.ErrStoreUnavailable)
		require.NotErrorIs(t, err, dailylog.ErrHabitNotFound)
	})
}
