package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/service"
	"insurance-portal/internal/stats"
	"insurance-portal/internal/utils"
)

// EntityService is what every list screen offers: a scoped, filtered list
// with summary stats plus create, read, update and confirmed delete.
type EntityService[T, D, S any] interface {
	List(u *models.User, q listing.Query) (service.ListResult[T, S], error)
	Get(u *models.User, id string) (T, error)
	Create(u *models.User, d D) (T, error)
	Update(u *models.User, id string, d D) (T, error)
	Delete(u *models.User, id string, confirm listing.Confirm) error
}

// EntityHTTP wires one screen's service to HTTP endpoints.
type EntityHTTP[T, D, S any] struct {
	svc EntityService[T, D, S]
	log zerolog.Logger
}

func NewEntityHTTP[T, D, S any](svc EntityService[T, D, S], log zerolog.Logger) *EntityHTTP[T, D, S] {
	return &EntityHTTP[T, D, S]{svc: svc, log: log}
}

func NewQuotesHTTP(p *service.Portal, log zerolog.Logger) *EntityHTTP[models.Quote, models.QuoteDraft, stats.Quotes] {
	return NewEntityHTTP[models.Quote, models.QuoteDraft, stats.Quotes](p.Quotes, log)
}

func NewAgenciesHTTP(p *service.Portal, log zerolog.Logger) *EntityHTTP[models.Agency, models.AgencyDraft, stats.Agencies] {
	return NewEntityHTTP[models.Agency, models.AgencyDraft, stats.Agencies](p.Agencies, log)
}

func NewAgentsHTTP(p *service.Portal, log zerolog.Logger) *EntityHTTP[models.Agent, models.AgentDraft, stats.Agents] {
	return NewEntityHTTP[models.Agent, models.AgentDraft, stats.Agents](p.Agents, log)
}

func NewCustomersHTTP(p *service.Portal, log zerolog.Logger) *EntityHTTP[models.Customer, models.CustomerDraft, stats.Customers] {
	return NewEntityHTTP[models.Customer, models.CustomerDraft, stats.Customers](p.Customers, log)
}

func (h *EntityHTTP[T, D, S]) Routes(r chi.Router) {
	r.Get("/", h.List())
	r.Post("/", h.Create())
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get())
		r.Put("/", h.Update())
		r.Delete("/", h.Delete())
	})
}

// GET /?q=&status=&insuranceType=&agencyId=
func (h *EntityHTTP[T, D, S]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		q := listing.Query{
			Q:             utils.QueryString(qv, "q"),
			Status:        utils.QueryString(qv, "status"),
			InsuranceType: utils.QueryString(qv, "insuranceType"),
			AgencyID:      utils.QueryString(qv, "agencyId"),
		}
		res, err := h.svc.List(utils.User(r.Context()), q)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, res)
	}
}

func (h *EntityHTTP[T, D, S]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := h.svc.Get(utils.User(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, it)
	}
}

func (h *EntityHTTP[T, D, S]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d D
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		it, err := h.svc.Create(utils.User(r.Context()), d)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, it)
	}
}

func (h *EntityHTTP[T, D, S]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d D
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		it, err := h.svc.Update(utils.User(r.Context()), chi.URLParam(r, "id"), d)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, it)
	}
}

// DELETE /{id}?confirm=true
func (h *EntityHTTP[T, D, S]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirm := listing.Declined
		if utils.QueryBool(r.URL.Query(), "confirm", false) {
			confirm = listing.Confirmed
		}
		if err := h.svc.Delete(utils.User(r.Context()), chi.URLParam(r, "id"), confirm); err != nil {
			writeError(w, h.log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
