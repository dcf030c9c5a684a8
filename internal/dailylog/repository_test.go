package dailylog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/habits-lambda/internal/dailylog"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	"github.com/saulo-duarte/habits-lambda/internal/testutil"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

func createHabit(t *testing.T, repo habit.Repository, typ habit.HabitType, target float64) *habit.Habit {
	t.Helper()
	h := &habit.Habit{ID: uuid.New(), Name: "Água", Type: typ, Target: target, Unit: "copos"}
	require.NoError(t, repo.Create(context.Background(), h))
	return h
}

func TestAccumulate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	habits := habit.NewRepository(db)
	repo := dailylog.NewRepository(db)

	h := createHabit(t, habits, habit.HabitTypeNumeric, 8)
	day := util.NewDate(2024, time.June, 12)

	first, err := repo.Accumulate(ctx, h.ID, day, 3, h.Target)
	require.NoError(t, err)
	require.Equal(t, 3.0, first.Value)
	require.NotNil(t, first.HistoricalTarget)
	require.Equal(t, 8.0, *first.HistoricalTarget)

	second, err := repo.Accumulate(ctx, h.ID, day, 2, h.Target)
	require.NoError(t, err)
	require.Equal(t, 5.0, second.Value)
	require.Equal(t, first.ID, second.ID)

	logs, err := repo.ListByHabit(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "2024-06-12", logs[0].Date.String())

	stored, err := repo.FindByHabitAndDate(ctx, h.ID, day)
	require.NoError(t, err)
	require.Equal(t, 5.0, stored.Value)
}

func TestFindByHabitAndDateNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := dailylog.NewRepository(db)

	_, err := repo.FindByHabitAndDate(context.Background(), uuid.New(), util.NewDate(2024, time.January, 1))
	require.ErrorIs(t, err, dailylog.ErrNotFound)
}

func TestLogMap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	habits := habit.NewRepository(db)
	repo := dailylog.NewRepository(db)

	h := createHabit(t, habits, habit.HabitTypeBinary, 1)
	other := createHabit(t, habits, habit.HabitTypeBinary, 1)

	_, err := repo.Accumulate(ctx, h.ID, util.NewDate(2024, time.June, 10), 1, 1)
	require.NoError(t, err)
	_, err = repo.Accumulate(ctx, h.ID, util.NewDate(2024, time.June, 11), 2.5, 1)
	require.NoError(t, err)
	_, err = repo.Accumulate(ctx, other.ID, util.NewDate(2024, time.June, 11), 7, 1)
	require.NoError(t, err)

	m, err := repo.LogMap(ctx, h.ID)
	require.NoError(t, err)
	require.Equal(t, 2, len(m))
	require.Equal(t, 1.0, m["2024-06-10"])
	require.Equal(t, 2.5, m["2024-06-11"])
}
