package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/config"
)

func multipartBody(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(config.UploadConfig{
		Dir:     t.TempDir(),
		BaseURL: "http://localhost:8080",
		MaxSize: 1 << 20,
	})
}

func TestProductImageStoresFileAndReturnsURL(t *testing.T) {
	h := newTestHandler(t)

	body, contentType := multipartBody(t, "lamp.png", "image/png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.productImage(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["url"], "http://localhost:8080/uploads/")
	assert.Equal(t, ".png", filepath.Ext(resp["url"]))

	entries, err := os.ReadDir(h.cfg.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}

func TestProductImageRejectsDisallowedMIME(t *testing.T) {
	h := newTestHandler(t)

	body, contentType := multipartBody(t, "evil.svg", "image/svg+xml", []byte("<svg/>"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/product-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.productImage(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entries, err := os.ReadDir(h.cfg.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProductImageRequiresFile(t *testing.T) {
	h := newTestHandler(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/product-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.productImage(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
