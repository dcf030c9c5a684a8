package habit

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

const defaultTarget = 1.0

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// WriteError maps service errors onto HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidHabitType):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrHabitNotFound):
		config.Error(w, http.StatusNotFound, "habit not found")
	case errors.Is(err, ErrStoreUnavailable):
		config.Error(w, http.StatusInternalServerError, "store unavailable")
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// Create godoc
// @Summary  Create a habit
// @Tags     habits
// @Accept   json,x-www-form-urlencoded
// @Produce  json
// @Success  201 {object} Habit
// @Router   /habits [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	values, err := config.RequestValues(r)
	if err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto := CreateHabitDTO{
		Name:   values.Get("name"),
		Type:   HabitType(values.Get("type")),
		Target: config.ParseFloatOr(values.Get("target"), defaultTarget),
		Unit:   values.Get("unit"),
		Color:  values.Get("color"),
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

// List godoc
// @Summary  List habits
// @Tags     habits
// @Produce  json
// @Param    type query string false "binary, numeric or vice"
// @Success  200 {array} Habit
// @Router   /habits [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{Type: HabitType(r.URL.Query().Get("type"))}

	habits, err := h.service.List(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, habits)
}

// Details godoc
// @Summary  Habit with week, month and year charts
// @Tags     habits
// @Produce  json
// @Param    id   path  string true  "habit id"
// @Param    date query string false "reference day, YYYY-MM-DD"
// @Success  200 {object} HabitDetailsResponse
// @Router   /habits/{id} [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	date := util.ParseDateOr(r.URL.Query().Get("date"), util.Today())

	details, err := h.service.Details(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, details)
}

// Stats godoc
// @Summary  Streak, ring and history strip for one habit
// @Tags     habits
// @Produce  json
// @Param    id   path  string true  "habit id"
// @Param    date query string false "view day, YYYY-MM-DD"
// @Success  200 {object} HabitSummary
// @Router   /habits/{id}/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	date := util.ParseDateOr(r.URL.Query().Get("date"), util.Today())

	summary, err := h.service.Summary(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

// Dashboard godoc
// @Summary  Every habit with its stats for a view day
// @Tags     dashboard
// @Produce  json
// @Param    date          query string false "view day, YYYY-MM-DD"
// @Param    exclude_vices query bool   false "hide vice habits"
// @Success  200 {object} DashboardResponse
// @Router   /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := util.ParseDateOr(query.Get("date"), util.Today())
	filter := ListFilter{ExcludeVices: query.Get("exclude_vices") == "true"}

	dashboard, err := h.service.Dashboard(r.Context(), date, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, dashboard)
}
