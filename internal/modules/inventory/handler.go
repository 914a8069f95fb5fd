package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/web"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/inventory/adjust",
		auth.Protect("POST /api/inventory/adjust", h.adjust))
	r.Get("/api/inventory/history/{productId}",
		auth.Protect("GET /api/inventory/history/{productId}", h.history))
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var adjustedBy *uuid.UUID
	if claims, ok := auth.FromContext(r.Context()); ok {
		if uid, err := claims.UserID(); err == nil {
			adjustedBy = &uid
		}
	}

	adj, err := h.service.Adjust(r.Context(), req, adjustedBy)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, adj)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.History(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, history)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNegativeStock):
		web.Error(w, http.StatusBadRequest, err.Error())
	default:
		web.Error(w, http.StatusInternalServerError, err.Error())
	}
}
