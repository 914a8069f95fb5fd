package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/web"
)

// Handler exposes cart HTTP endpoints. Every route operates on the
// authenticated user's own cart.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/cart", auth.Protect("GET /api/cart", h.get))
	r.Post("/api/cart/items", auth.Protect("POST /api/cart/items", h.addItem))
	r.Put("/api/cart/items/{productId}",
		auth.Protect("PUT /api/cart/items/{productId}", h.setQuantity))
	r.Delete("/api/cart/items/{productId}",
		auth.Protect("DELETE /api/cart/items/{productId}", h.removeItem))
	r.Delete("/api/cart", auth.Protect("DELETE /api/cart", h.clear))
}

// currentUser pulls the authenticated user's id from the request claims.
func currentUser(r *http.Request) (uuid.UUID, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	uid, err := claims.UserID()
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	v, err := h.service.Get(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, v)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.service.AddItem(r.Context(), userID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, v)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "productId must be a valid uuid")
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.service.SetQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, v)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "productId must be a valid uuid")
		return
	}

	v, err := h.service.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, v)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.service.Clear(r.Context(), userID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrProductNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		web.Error(w, http.StatusBadRequest, err.Error())
	default:
		web.Error(w, http.StatusInternalServerError, err.Error())
	}
}
