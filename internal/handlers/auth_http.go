package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"insurance-portal/internal/middleware"
	"insurance-portal/internal/service"
	"insurance-portal/internal/session"
	"insurance-portal/internal/utils"
)

type AuthHTTP struct {
	svc    *service.AuthService
	ttl    time.Duration
	secure bool
	log    zerolog.Logger
}

// NewAuthHTTP issues session cookies living for ttl; secure marks them
// HTTPS-only.
func NewAuthHTTP(s *service.AuthService, ttl time.Duration, secure bool, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, ttl: ttl, secure: secure, log: log}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		st, err := h.svc.Login(r.Context(), session.New(), in)
		if err != nil {
			writeError(w, h.log, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    st.Token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   h.secure,
			Expires:  time.Now().Add(h.ttl),
		})
		utils.JSON(w, http.StatusOK, st)
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tok := middleware.Token(r); tok != "" {
			if err := h.svc.Logout(r.Context(), tok); err != nil {
				writeError(w, h.log, err)
				return
			}
		}
		middleware.ClearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, _ := utils.GetString(r.Context(), utils.CtxToken)
		utils.JSON(w, http.StatusOK, h.svc.Me(utils.User(r.Context()), tok))
	}
}
