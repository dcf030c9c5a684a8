package container

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/dailylog"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	"github.com/saulo-duarte/habits-lambda/internal/migration"
	"github.com/saulo-duarte/habits-lambda/internal/router"
)

type Container struct {
	Settings          config.Settings
	HabitContainer    *habit.Container
	DailyLogContainer *dailylog.Container
}

// New configures logging, connects to the database, migrates it and wires
// every feature.
func New(ctx context.Context, settings config.Settings) (*Container, error) {
	config.Init(settings)

	if err := config.Connect(ctx, settings.DBDriver, settings.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := migration.Migrate(ctx, config.DB); err != nil {
		return nil, err
	}

	return Build(config.DB, settings), nil
}

// Build wires the features on an already migrated database.
func Build(db *gorm.DB, settings config.Settings) *Container {
	logRepo := dailylog.NewRepository(db)
	habitContainer := habit.NewContainer(db, logRepo)
	dailyLogContainer := dailylog.NewContainer(logRepo, habitContainer.Repo)

	return &Container{
		Settings:          settings,
		HabitContainer:    habitContainer,
		DailyLogContainer: dailyLogContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		HabitHandler:    c.HabitContainer.Handler,
		DailyLogHandler: c.DailyLogContainer.Handler,
		CorsOrigins:     c.Settings.CorsOrigins,
	})
}
