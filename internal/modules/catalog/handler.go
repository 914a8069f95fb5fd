package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/web"
)

// Handler exposes category and subcategory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Get("/{id}", h.getCategory)
		r.Post("/", auth.Protect("POST /api/categories", h.createCategory))
		r.Put("/{id}", auth.Protect("PUT /api/categories/{id}", h.updateCategory))
		r.Delete("/{id}", auth.Protect("DELETE /api/categories/{id}", h.deleteCategory))
	})
	r.Route("/api/subcategories", func(r chi.Router) {
		r.Get("/", h.listSubCategories)
		r.Get("/{id}", h.getSubCategory)
		r.Post("/", auth.Protect("POST /api/subcategories", h.createSubCategory))
		r.Put("/{id}", auth.Protect("PUT /api/subcategories/{id}", h.updateSubCategory))
		r.Delete("/{id}", auth.Protect("DELETE /api/subcategories/{id}", h.deleteSubCategory))
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.Respond(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSubCategories(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.service.ListSubCategories(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.Respond(w, http.StatusOK, subcategories)
}

func (h *Handler) getSubCategory(w http.ResponseWriter, r *http.Request) {
	sc, err := h.service.GetSubCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, sc)
}

func (h *Handler) createSubCategory(w http.ResponseWriter, r *http.Request) {
	var req SubCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sc, err := h.service.CreateSubCategory(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusCreated, sc)
}

func (h *Handler) updateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req SubCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sc, err := h.service.UpdateSubCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, sc)
}

func (h *Handler) deleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSubCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrCategoryInUse),
		errors.Is(err, ErrSubCategoryInUse),
		errors.Is(err, ErrCategoryMissing),
		errors.Is(err, ErrInvalidInput):
		web.Error(w, http.StatusBadRequest, err.Error())
	default:
		web.Error(w, http.StatusInternalServerError, err.Error())
	}
}
