package service

import (
	"fmt"
	"strings"

	"insurance-portal/internal/access"
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/stats"
)

type QuoteService struct{ s *store }

func (qs *QuoteService) List(u *models.User, q listing.Query) (ListResult[models.Quote, stats.Quotes], error) {
	if !access.CanView(u, access.Quotes) {
		return ListResult[models.Quote, stats.Quotes]{}, ErrForbidden
	}
	items := qs.s.quotes.List(listing.PrincipalOf(u), q)
	return ListResult[models.Quote, stats.Quotes]{Items: items, Total: len(items), Stats: stats.ForQuotes(items)}, nil
}

func (qs *QuoteService) Get(u *models.User, id string) (models.Quote, error) {
	if !access.CanView(u, access.Quotes) {
		return models.Quote{}, ErrForbidden
	}
	return qs.s.quotes.Get(listing.PrincipalOf(u), id)
}

// Create always starts a quote as a draft written by the caller. Customer,
// agent and agency names are copied at this point and never refreshed.
func (qs *QuoteService) Create(u *models.User, d models.QuoteDraft) (models.Quote, error) {
	if !access.CanView(u, access.Quotes) {
		return models.Quote{}, ErrForbidden
	}
	kind := orDefault(d.InsuranceType, models.InsuranceAuto)
	if !kind.Valid() {
		return models.Quote{}, fmt.Errorf("%w: unknown insurance type %q", ErrInvalidInput, kind)
	}
	customerID, customerName, customerAgency, err := qs.customer(u, d)
	if err != nil {
		return models.Quote{}, err
	}

	agencyID := u.AgencyID
	if u.Role == models.RoleMasterAdmin {
		agencyID = strings.TrimSpace(d.AgencyID)
		if agencyID == "" {
			agencyID = customerAgency
		}
	}

	now := qs.s.now().UTC()
	q := models.Quote{
		ID:             qs.s.ids.New("q"),
		CustomerID:     customerID,
		CustomerName:   customerName,
		AgentID:        u.ID,
		AgentName:      u.FullName(),
		AgencyID:       agencyID,
		AgencyName:     qs.s.agencyName(agencyID),
		InsuranceType:  kind,
		Status:         models.QuoteStatusDraft,
		Premium:        d.Premium.Float(),
		Deductible:     d.Deductible.Float(),
		CoverageAmount: d.CoverageAmount.Float(),
		Terms:          strings.TrimSpace(d.Terms),
		ValidUntil:     strings.TrimSpace(d.ValidUntil),
		Notes:          strings.TrimSpace(d.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	qs.s.quotes.Insert(q)
	qs.s.log.Info().Str("quote", q.ID).Str("agency", agencyID).Str("by", u.ID).Float64("premium", q.Premium).Msg("quote created")
	return q, nil
}

// Update replaces the quote's terms wholesale, the customer name included;
// a new customer id re-resolves the name from the customer collection.
// Status changes only when the draft names one; a blank insurance type keeps
// the current one.
func (qs *QuoteService) Update(u *models.User, id string, d models.QuoteDraft) (models.Quote, error) {
	if !access.CanView(u, access.Quotes) {
		return models.Quote{}, ErrForbidden
	}
	if d.InsuranceType != "" && !d.InsuranceType.Valid() {
		return models.Quote{}, fmt.Errorf("%w: unknown insurance type %q", ErrInvalidInput, d.InsuranceType)
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Quote{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	p := listing.PrincipalOf(u)
	cur, err := qs.s.quotes.Get(p, id)
	if err != nil {
		return models.Quote{}, fmt.Errorf("update quote %s: %w", id, err)
	}
	if !access.CanEditQuote(u, cur) {
		return models.Quote{}, ErrForbidden
	}
	customerID, customerName := cur.CustomerID, strings.TrimSpace(d.CustomerName)
	if cid := strings.TrimSpace(d.CustomerID); cid != "" && cid != cur.CustomerID {
		customerID, customerName, _, err = qs.customer(u, d)
		if err != nil {
			return models.Quote{}, err
		}
	}

	q, err := qs.s.quotes.Update(p, id, func(cur models.Quote) models.Quote {
		cur.CustomerID = customerID
		cur.CustomerName = customerName
		cur.InsuranceType = orDefault(d.InsuranceType, cur.InsuranceType)
		cur.Status = orDefault(d.Status, cur.Status)
		cur.Premium = d.Premium.Float()
		cur.Deductible = d.Deductible.Float()
		cur.CoverageAmount = d.CoverageAmount.Float()
		cur.Terms = strings.TrimSpace(d.Terms)
		cur.ValidUntil = strings.TrimSpace(d.ValidUntil)
		cur.Notes = strings.TrimSpace(d.Notes)
		cur.UpdatedAt = qs.s.now.stamp(cur.UpdatedAt)
		return cur
	})
	if err != nil {
		return models.Quote{}, fmt.Errorf("update quote %s: %w", id, err)
	}
	qs.s.log.Info().Str("quote", id).Str("status", string(q.Status)).Str("by", u.ID).Msg("quote updated")
	return q, nil
}

func (qs *QuoteService) Delete(u *models.User, id string, confirm listing.Confirm) error {
	if !access.CanView(u, access.Quotes) {
		return ErrForbidden
	}
	if err := qs.s.quotes.Delete(listing.PrincipalOf(u), id, confirm); err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	qs.s.log.Info().Str("quote", id).Str("by", u.ID).Msg("quote deleted")
	return nil
}

// customer resolves the draft's customer reference against what u may see.
// Without an id the free-text name is used as given.
func (qs *QuoteService) customer(u *models.User, d models.QuoteDraft) (id, name, agencyID string, err error) {
	id = strings.TrimSpace(d.CustomerID)
	if id == "" {
		return "", strings.TrimSpace(d.CustomerName), "", nil
	}
	c, err := qs.s.customers.Get(listing.PrincipalOf(u), id)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: unknown customer %q", ErrInvalidInput, id)
	}
	return c.ID, c.FullName(), c.AgencyID, nil
}
