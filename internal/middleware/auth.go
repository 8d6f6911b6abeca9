package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"insurance-portal/internal/models"
	"insurance-portal/internal/service"
	"insurance-portal/internal/utils"
)

const SessionCookie = "session"

// Authenticator resolves a token to the signed-in user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, *utils.Claims, error)
}

// Token returns the raw session token from the cookie or the bearer header.
func Token(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func WithAuth(log zerolog.Logger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := Token(r)
			if tok == "" {
				next.ServeHTTP(w, r) // unauthenticated; RequireAuth decides
				return
			}

			u, _, err := auth.Authenticate(r.Context(), tok)
			if err != nil {
				if !errors.Is(err, service.ErrInvalidCredentials) {
					log.Error().Err(err).Msg("authenticate")
				}
				// stop the browser from replaying a dead cookie
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.WithUser(r.Context(), u)
			ctx = context.WithValue(ctx, utils.CtxToken, tok)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
