package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/habits-lambda/docs"
	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/dailylog"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	"github.com/saulo-duarte/habits-lambda/internal/middlewares"
)

type RouterConfig struct {
	HabitHandler    *habit.Handler
	DailyLogHandler *dailylog.Handler
	CorsOrigins     []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middlewares.Cors(cfg.CorsOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/dashboard", cfg.HabitHandler.Dashboard)
	r.Mount("/habits", habit.Routes(cfg.HabitHandler))
	r.Mount("/habits/{id}/logs", dailylog.Routes(cfg.DailyLogHandler))

	return r
}
