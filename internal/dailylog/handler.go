package dailylog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/habit"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

const defaultAmount = 1.0

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// LogProgress godoc
// @Summary  Add to a habit's value for a day
// @Tags     logs
// @Accept   json,x-www-form-urlencoded
// @Produce  json
// @Param    id path string true "habit id"
// @Success  200 {object} LogResult
// @Router   /habits/{id}/logs [post]
func (h *Handler) LogProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	values, err := config.RequestValues(r)
	if err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := util.ParseDateOr(values.Get("date"), util.Today())
	amount := config.ParseFloatOr(values.Get("amount"), defaultAmount)

	result, err := h.service.LogProgress(r.Context(), chi.URLParam(r, "id"), date, amount)
	if err != nil {
		habit.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

// List godoc
// @Summary  Raw daily logs of a habit
// @Tags     logs
// @Produce  json
// @Param    id path string true "habit id"
// @Success  200 {array} DailyLog
// @Router   /habits/{id}/logs [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListByHabit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		habit.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, logs)
}
