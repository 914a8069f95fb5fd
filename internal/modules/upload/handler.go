package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/util"
	"ecommerce-backend/internal/web"
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Handler stores product images on disk and serves them back under
// /uploads/.
type Handler struct {
	cfg config.UploadConfig
}

func NewHandler(cfg config.UploadConfig) *Handler { return &Handler{cfg: cfg} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/upload/product-image",
		auth.Protect("POST /api/upload/product-image", h.productImage))

	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.cfg.Dir)))
	r.Get("/uploads/*", fs.ServeHTTP)
}

func (h *Handler) productImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxSize)
	if err := r.ParseMultipartForm(h.cfg.MaxSize); err != nil {
		web.Error(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		web.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedTypes[contentType]; !ok {
		web.Error(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, GIF, WebP")
		return
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		web.Error(w, http.StatusInternalServerError, "could not prepare upload directory")
		return
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.Dir, name))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "could not store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		web.Error(w, http.StatusInternalServerError, "could not store file")
		return
	}

	baseURL := h.cfg.BaseURL
	if baseURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, r.Host)
	}

	util.GetLogger().Info("product image stored",
		zap.String("file", name),
		zap.Int64("size", header.Size))
	web.Respond(w, http.StatusOK, map[string]string{
		"url": fmt.Sprintf("%s/uploads/%s", baseURL, name),
	})
}
