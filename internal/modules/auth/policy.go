package auth

import (
	"net/http"

	"ecommerce-backend/internal/modules/user"
	"ecommerce-backend/internal/web"
)

// routePolicy is the authorization table for every protected route,
// keyed by "<METHOD> <pattern>". An empty role list means any
// authenticated user may call the route. Routes not listed here are
// public and must not be wrapped with Protect.
var routePolicy = map[string][]user.Role{
	"GET /api/auth/me": {},

	"POST /api/categories":        {user.RoleAdmin},
	"PUT /api/categories/{id}":    {user.RoleAdmin},
	"DELETE /api/categories/{id}": {user.RoleAdmin},

	"POST /api/subcategories":        {user.RoleAdmin},
	"PUT /api/subcategories/{id}":    {user.RoleAdmin},
	"DELETE /api/subcategories/{id}": {user.RoleAdmin},

	"POST /api/products":        {user.RoleAdmin, user.RoleVendor},
	"PUT /api/products/{id}":    {user.RoleAdmin, user.RoleVendor},
	"DELETE /api/products/{id}": {user.RoleAdmin, user.RoleVendor},

	"POST /api/vendors":        {user.RoleAdmin},
	"PUT /api/vendors/{id}":    {user.RoleAdmin},
	"DELETE /api/vendors/{id}": {user.RoleAdmin},

	"GET /api/orders":             {},
	"POST /api/orders":            {},
	"GET /api/orders/{id}":        {},
	"PUT /api/orders/{id}/status": {user.RoleAdmin, user.RoleVendor},

	"GET /api/dashboard/stats": {user.RoleAdmin, user.RoleVendor},

	"POST /api/inventory/adjust":             {user.RoleAdmin, user.RoleVendor},
	"GET /api/inventory/history/{productId}": {user.RoleAdmin, user.RoleVendor},

	"POST /api/payment": {},

	"POST /api/upload/product-image": {user.RoleAdmin, user.RoleVendor},

	"GET /api/cart":                      {},
	"POST /api/cart/items":               {},
	"PUT /api/cart/items/{productId}":    {},
	"DELETE /api/cart/items/{productId}": {},
	"DELETE /api/cart":                   {},
}

// AllowedRoles exposes the policy entry for a route. The second return
// reports whether the route is protected at all.
func AllowedRoles(route string) ([]user.Role, bool) {
	roles, ok := routePolicy[route]
	return roles, ok
}

// Protect wraps a handler with the policy entry registered for route:
// unauthenticated callers get 401, authenticated callers whose role is
// not in the entry get 403. Protecting a route with no policy entry is a
// programming error and panics at registration time.
func Protect(route string, next http.HandlerFunc) http.HandlerFunc {
	roles, ok := routePolicy[route]
	if !ok {
		panic("auth: no policy entry for route " + route)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := FromContext(r.Context())
		if !authed {
			web.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			web.Error(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r)
	}
}

func roleAllowed(role user.Role, allowed []user.Role) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
