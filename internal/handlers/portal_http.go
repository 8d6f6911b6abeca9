package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"insurance-portal/internal/access"
	"insurance-portal/internal/service"
	"insurance-portal/internal/utils"
)

type PortalHTTP struct {
	portal *service.Portal
	log    zerolog.Logger
}

func NewPortalHTTP(p *service.Portal, log zerolog.Logger) *PortalHTTP {
	return &PortalHTTP{portal: p, log: log}
}

// GET /api/navigation
func (h *PortalHTTP) Navigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]any{"items": access.Menu(utils.User(r.Context()))})
	}
}

// GET /api/dashboard
func (h *PortalHTTP) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := h.portal.Dashboard(utils.User(r.Context()))
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, d)
	}
}
