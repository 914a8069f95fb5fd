package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/modules/user"
	"ecommerce-backend/internal/web"
)

// Handler exposes the auth HTTP endpoints.
type Handler struct {
	service  Service
	userRepo user.Repository
}

func NewHandler(service Service, userRepo user.Repository) *Handler {
	return &Handler{service: service, userRepo: userRepo}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/register", h.register)
	r.Get("/api/auth/me", Protect("GET /api/auth/me", h.me))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		web.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.Respond(w, http.StatusOK, resp)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if errors.Is(err, user.ErrDuplicateEmail) {
		web.Error(w, http.StatusBadRequest, "email already registered")
		return
	}
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.Respond(w, http.StatusCreated, resp)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, _ := FromContext(r.Context())
	u, err := h.userRepo.GetUserByID(r.Context(), claims.Subject)
	if errors.Is(err, user.ErrNotFound) {
		web.Error(w, http.StatusUnauthorized, "user no longer exists")
		return
	}
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.Respond(w, http.StatusOK, u)
}
