package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"insurance-portal/internal/access"
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/seed"
	"insurance-portal/internal/stats"
)

var (
	ErrForbidden    = errors.New("access restricted")
	ErrInvalidInput = errors.New("invalid input")
)

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

// stamp returns now, but never earlier than prev.
func (c Clock) stamp(prev time.Time) time.Time {
	t := c().UTC()
	if t.Before(prev) {
		return prev
	}
	return t
}

// ListResult is one screen's filtered view plus its summary cards.
type ListResult[T any, S any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Stats S   `json:"stats"`
}

// Portal owns the in-memory collections and the per-screen services built
// on them.
type Portal struct {
	Agencies  *AgencyService
	Agents    *AgentService
	Customers *CustomerService
	Quotes    *QuoteService

	store *store
	now   Clock
}

type store struct {
	agencies  *listing.Collection[models.Agency]
	agents    *listing.Collection[models.Agent]
	customers *listing.Collection[models.Customer]
	quotes    *listing.Collection[models.Quote]
	ids       *listing.IDs
	now       Clock
	log       zerolog.Logger
}

// NewPortal seeds every collection from d. A nil clock means time.Now.
func NewPortal(d *seed.Data, log zerolog.Logger, now Clock) *Portal {
	if now == nil {
		now = time.Now
	}
	if d == nil {
		d = &seed.Data{}
	}
	s := &store{
		agencies:  listing.NewCollection(AgencySchema, d.Agencies),
		agents:    listing.NewCollection(AgentSchema, d.Agents),
		customers: listing.NewCollection(CustomerSchema, d.Customers),
		quotes:    listing.NewCollection(QuoteSchema, d.Quotes),
		ids:       listing.NewIDs(),
		now:       now,
		log:       log,
	}
	return &Portal{
		Agencies:  &AgencyService{s},
		Agents:    &AgentService{s},
		Customers: &CustomerService{s},
		Quotes:    &QuoteService{s},
		store:     s,
		now:       now,
	}
}

// Dashboard aggregates everything u may see.
func (p *Portal) Dashboard(u *models.User) (stats.Dashboard, error) {
	if !access.CanView(u, access.Dashboard) {
		return stats.Dashboard{}, ErrForbidden
	}
	pr := listing.PrincipalOf(u)
	in := stats.Inputs{
		User:      u,
		Quotes:    p.store.quotes.List(pr, listing.Query{}),
		Customers: p.store.customers.List(pr, listing.Query{}),
		Now:       p.now(),
	}
	if access.CanView(u, access.Agencies) {
		in.Agencies = p.store.agencies.List(pr, listing.Query{})
	}
	if access.CanView(u, access.Agents) {
		in.Agents = p.store.agents.List(pr, listing.Query{})
	}
	return stats.BuildDashboard(in), nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
