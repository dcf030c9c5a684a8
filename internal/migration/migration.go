package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/dailylog"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
)

const backfillHistoricalTarget = `
UPDATE daily_logs
SET historical_target = (SELECT target FROM habits WHERE habits.id = daily_logs.habit_id)
WHERE historical_target IS NULL`

// Migrate creates or updates the schema and backfills historical targets on
// rows written before the column existed. Safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := config.WithContext(ctx)

	if err := db.WithContext(ctx).AutoMigrate(&habit.Habit{}, &dailylog.DailyLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	backfilled, err := BackfillHistoricalTargets(ctx, db)
	if err != nil {
		return err
	}

	log.WithField("backfilled", backfilled).Info("Database schema ready")
	return nil
}

func BackfillHistoricalTargets(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).Exec(backfillHistoricalTarget)
	if res.Error != nil {
		return 0, fmt.Errorf("backfill historical_target: %w", res.Error)
	}
	return res.RowsAffected, nil
}
