package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"insurance-portal/internal/access"
	"insurance-portal/internal/config"
	"insurance-portal/internal/handlers"
	"insurance-portal/internal/middleware"
	"insurance-portal/internal/service"
)

type Deps struct {
	Portal *service.Portal
	Auth   *service.AuthService
	// Registry collects HTTP metrics and backs /metrics; nil means a fresh one.
	Registry *prometheus.Registry
	// Ping is checked by /healthz when set.
	Ping func(context.Context) error
}

func New(log zerolog.Logger, deps Deps, cfg config.Config) http.Handler {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitPerMin, time.Minute))
	r.Use(metrics.Handler)
	r.Use(middleware.WithAuth(log, deps.Auth))

	// Health
	r.Get("/healthz", handlers.Health(deps.Ping))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	ah := handlers.NewAuthHTTP(deps.Auth, cfg.SessionTTL, cfg.Env == "prod", log)
	ph := handlers.NewPortalHTTP(deps.Portal, log)
	screens := []struct {
		path   string
		screen access.Screen
		routes func(chi.Router)
	}{
		{"/quotes", access.Quotes, handlers.NewQuotesHTTP(deps.Portal, log).Routes},
		{"/agencies", access.Agencies, handlers.NewAgenciesHTTP(deps.Portal, log).Routes},
		{"/agents", access.Agents, handlers.NewAgentsHTTP(deps.Portal, log).Routes},
		{"/customers", access.Customers, handlers.NewCustomersHTTP(deps.Portal, log).Routes},
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", ah.Login())
			r.Post("/logout", ah.Logout())
			r.With(middleware.RequireAuth).Get("/me", ah.Me())
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/navigation", ph.Navigation())
			r.With(middleware.RequireScreen(access.Dashboard)).Get("/dashboard", ph.Dashboard())
			for _, s := range screens {
				r.Route(s.path, func(r chi.Router) {
					r.Use(middleware.RequireScreen(s.screen))
					s.routes(r)
				})
			}
		})
	})

	return r
}
