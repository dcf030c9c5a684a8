package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/container"
	"github.com/saulo-duarte/habits-lambda/internal/migration"
)

type DBFlags struct {
	DBDriver string `help:"Database driver (sqlite or postgres)." env:"DB_DRIVER"`
	DSN      string `help:"Database DSN." env:"DATABASE_DSN"`
}

func (f DBFlags) apply(s *config.Settings) {
	if f.DBDriver != "" {
		s.DBDriver = f.DBDriver
	}
	if f.DSN != "" {
		s.DatabaseDSN = f.DSN
	}
}

type ServeCmd struct {
	DBFlags `embed:""`
	Port int `help:"HTTP port." env:"PORT"`
}

func (c *ServeCmd) Run(settings *config.Settings) error {
	c.apply(settings)
	if c.Port != 0 {
		settings.Port = c.Port
	}

	ctx := context.Background()
	app, err := container.New(ctx, *settings)
	if err != nil {
		return err
	}
	defer closeDB()

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(settings.Port),
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			config.Logger.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	config.Logger.WithField("port", settings.Port).Info("Listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	config.Logger.Info("Server closed")
	return nil
}

type InitDBCmd struct {
	DBFlags `embed:""`
}

func (c *InitDBCmd) Run(settings *config.Settings) error {
	c.apply(settings)
	config.Init(*settings)

	ctx := context.Background()
	if err := config.Connect(ctx, settings.DBDriver, settings.DatabaseDSN); err != nil {
		return err
	}
	defer closeDB()
	return migration.Migrate(ctx, config.DB)
}

func closeDB() {
	if err := config.Close(); err != nil {
		config.Logger.WithError(err).Error("Failed to close database")
	}
}

var CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API." default:"1"`
	InitDB InitDBCmd `cmd:"" name:"init-db" help:"Create or migrate the database schema."`
}

// @title       Habits API
// @version     1.0
// @description Habit tracking: daily logs, streaks, shields and charts.
// @BasePath    /
func main() {
	settings := config.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("habits"),
		kong.Description("Habit tracker API"),
		kong.UsageOnError(),
		kong.Bind(&settings),
	)

	if err := ctx.Run(); err != nil {
		config.Logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
