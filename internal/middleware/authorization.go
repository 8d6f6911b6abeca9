package middleware

import (
	"net/http"

	"insurance-portal/internal/access"
	"insurance-portal/internal/utils"
)

// RequireAuth blocks when no user is present in context (set by WithAuth).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.User(r.Context()) == nil {
			utils.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireScreen allows the request only if the current role may open s.
func RequireScreen(s access.Screen) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !access.CanView(utils.User(r.Context()), s) {
				utils.Error(w, http.StatusForbidden, "access restricted")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
