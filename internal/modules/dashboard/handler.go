package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/web"
)

// Handler exposes the dashboard HTTP endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/dashboard/stats", auth.Protect("GET /api/dashboard/stats", h.stats))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.Respond(w, http.StatusOK, stats)
}
