package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/modules/user"
)

func issueToken(t *testing.T, svc Service, role string) string {
	t.Helper()
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    role + "@test.com",
		Password: "pw",
		Role:     role,
	})
	require.NoError(t, err)
	return resp.Token
}

func TestAuthenticatorPassesThroughWithoutHeader(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	var sawClaims bool
	handler := Authenticator(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawClaims = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawClaims)
}

func TestAuthenticatorRejectsNonBearerScheme(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	handler := Authenticator(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorRejectsInvalidToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	handler := Authenticator(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorStoresClaims(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	token := issueToken(t, svc, "Vendor")

	var got *Claims
	handler := Authenticator(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, user.RoleVendor, got.Role)
}

func withClaims(req *http.Request, role user.Role) *http.Request {
	claims := &Claims{Role: role}
	return req.WithContext(context.WithValue(req.Context(), claimsKey, claims))
}

func TestProtectRequiresAuthentication(t *testing.T) {
	handler := Protect("GET /api/cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectEnforcesRoles(t *testing.T) {
	handler := Protect("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, withClaims(httptest.NewRequest(http.MethodPost, "/api/categories", nil), user.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, withClaims(httptest.NewRequest(http.MethodPost, "/api/categories", nil), user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectAllowsAnyAuthenticatedRoleOnEmptyEntry(t *testing.T) {
	handler := Protect("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	handler(rec, withClaims(httptest.NewRequest(http.MethodPost, "/api/orders", nil), user.RoleCustomer))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProtectPanicsOnUnlistedRoute(t *testing.T) {
	assert.Panics(t, func() {
		Protect("GET /api/not-in-the-table", func(w http.ResponseWriter, r *http.Request) {})
	})
}

func TestAllowedRoles(t *testing.T) {
	roles, ok := AllowedRoles("PUT /api/orders/{id}/status")
	require.True(t, ok)
	assert.ElementsMatch(t, []user.Role{user.RoleAdmin, user.RoleVendor}, roles)

	_, ok = AllowedRoles("GET /api/products")
	assert.False(t, ok)
}

// Guard against accidentally shipping a token TTL of zero.
func TestIssuedTokenOutlivesRequest(t *testing.T) {
	svc := NewService(newFakeUserRepo(), "test-secret", 24*time.Hour)
	token := issueToken(t, svc, "Customer")

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Greater(t, claims.ExpiresAt, time.Now().Add(23*time.Hour).Unix())
}
