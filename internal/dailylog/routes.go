package dailylog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes is mounted under /habits/{id}/logs.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.LogProgress)
	r.Get("/", h.List)

	return r
}
