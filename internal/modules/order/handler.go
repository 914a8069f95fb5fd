package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/modules/user"
	"ecommerce-backend/internal/web"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", auth.Protect("GET /api/orders", h.list))
		r.Post("/", auth.Protect("POST /api/orders", h.place))
		r.Get("/{id}", auth.Protect("GET /api/orders/{id}", h.get))
		r.Put("/{id}/status", auth.Protect("PUT /api/orders/{id}/status", h.updateStatus))
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	// Non-admins only ever see their own orders.
	var userID *uuid.UUID
	if claims.Role != user.RoleAdmin {
		uid, err := claims.UserID()
		if err != nil {
			web.Error(w, http.StatusUnauthorized, "user session is invalid")
			return
		}
		userID = &uid
	}

	orders, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, orders)
}

func (h *Handler) place(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	userID, err := claims.UserID()
	if err != nil {
		web.Error(w, http.StatusUnauthorized, "user session is invalid")
		return
	}

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.service.PlaceOrder(r.Context(), userID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusCreated, o)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	claims, _ := auth.FromContext(r.Context())
	if claims.Role != user.RoleAdmin && o.UserID.String() != claims.Subject {
		web.Error(w, http.StatusForbidden, "not your order")
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserNotFound):
		web.Error(w, http.StatusUnauthorized, "user session is invalid, please log in again")
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrUnknownStatus):
		web.Error(w, http.StatusBadRequest, err.Error())
	default:
		web.Error(w, http.StatusInternalServerError, err.Error())
	}
}
