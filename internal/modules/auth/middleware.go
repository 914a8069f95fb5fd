package auth

import (
	"context"
	"net/http"
	"strings"

	"ecommerce-backend/internal/web"
)

type contextKey struct{}

var claimsKey contextKey

// FromContext returns the authenticated claims stored by Authenticator,
// if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok
}

// Authenticator parses the Authorization header when present and stores
// the token claims on the request context. Requests without a header pass
// through unauthenticated; a malformed, invalid or expired token is
// rejected outright with 401.
func Authenticator(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				web.Error(w, http.StatusUnauthorized, "authorization header must use the Bearer scheme")
				return
			}

			claims, err := svc.ParseToken(token)
			if err != nil {
				web.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}
