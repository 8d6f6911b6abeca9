package service

import (
	"fmt"
	"strings"

	"insurance-portal/internal/access"
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/stats"
)

type CustomerService struct{ s *store }

func (c *CustomerService) List(u *models.User, q listing.Query) (ListResult[models.Customer, stats.Customers], error) {
	if !access.CanView(u, access.Customers) {
		return ListResult[models.Customer, stats.Customers]{}, ErrForbidden
	}
	items := c.s.customers.List(listing.PrincipalOf(u), q)
	return ListResult[models.Customer, stats.Customers]{Items: items, Total: len(items), Stats: stats.ForCustomers(items)}, nil
}

func (c *CustomerService) Get(u *models.User, id string) (models.Customer, error) {
	if !access.CanView(u, access.Customers) {
		return models.Customer{}, ErrForbidden
	}
	return c.s.customers.Get(listing.PrincipalOf(u), id)
}

func (c *CustomerService) Create(u *models.User, d models.CustomerDraft) (models.Customer, error) {
	if !access.CanView(u, access.Customers) {
		return models.Customer{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Customer{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	agentID, agencyID, err := c.s.owner(u, strings.TrimSpace(d.AgentID), strings.TrimSpace(d.AgencyID))
	if err != nil {
		return models.Customer{}, err
	}
	now := c.s.now().UTC()
	cu := models.Customer{
		ID:          c.s.ids.New("cus"),
		FirstName:   strings.TrimSpace(d.FirstName),
		LastName:    strings.TrimSpace(d.LastName),
		Email:       strings.TrimSpace(d.Email),
		Phone:       phone(d.Phone),
		DateOfBirth: strings.TrimSpace(d.DateOfBirth),
		Address:     trimAddress(d.Address),
		Status:      orDefault(d.Status, models.StatusActive),
		AgentID:     agentID,
		AgencyID:    agencyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.s.customers.Insert(cu)
	c.s.log.Info().Str("customer", cu.ID).Str("agent", agentID).Str("by", u.ID).Msg("customer created")
	return cu, nil
}

// Update keeps the current value for every blank draft field. Agents cannot
// hand a customer over; admins may reassign within their reach.
func (c *CustomerService) Update(u *models.User, id string, d models.CustomerDraft) (models.Customer, error) {
	if !access.CanView(u, access.Customers) {
		return models.Customer{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Customer{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	var agentID, agencyID string
	if u.Role != models.RoleAgent && strings.TrimSpace(d.AgentID) != "" {
		var err error
		agentID, agencyID, err = c.s.owner(u, strings.TrimSpace(d.AgentID), strings.TrimSpace(d.AgencyID))
		if err != nil {
			return models.Customer{}, err
		}
	}

	cu, err := c.s.customers.Update(listing.PrincipalOf(u), id, func(cur models.Customer) models.Customer {
		cur.FirstName = keep(d.FirstName, cur.FirstName)
		cur.LastName = keep(d.LastName, cur.LastName)
		cur.Email = keep(d.Email, cur.Email)
		cur.Phone = keep(phone(d.Phone), cur.Phone)
		cur.DateOfBirth = keep(d.DateOfBirth, cur.DateOfBirth)
		cur.Address = models.Address{
			Street:  keep(d.Address.Street, cur.Address.Street),
			City:    keep(d.Address.City, cur.Address.City),
			State:   keep(d.Address.State, cur.Address.State),
			ZipCode: keep(d.Address.ZipCode, cur.Address.ZipCode),
		}
		cur.Status = orDefault(d.Status, cur.Status)
		if agentID != "" {
			cur.AgentID, cur.AgencyID = agentID, agencyID
		}
		cur.UpdatedAt = c.s.now.stamp(cur.UpdatedAt)
		return cur
	})
	if err != nil {
		return models.Customer{}, fmt.Errorf("update customer %s: %w", id, err)
	}
	c.s.log.Info().Str("customer", id).Str("by", u.ID).Msg("customer updated")
	return cu, nil
}

func (c *CustomerService) Delete(u *models.User, id string, confirm listing.Confirm) error {
	if !access.CanView(u, access.Customers) {
		return ErrForbidden
	}
	if err := c.s.customers.Delete(listing.PrincipalOf(u), id, confirm); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	c.s.log.Info().Str("customer", id).Str("by", u.ID).Msg("customer deleted")
	return nil
}

// owner resolves which agent and agency a customer record belongs to.
// Agents always own what they create; agency admins stay inside their
// agency; master admins may name any agent, whose agency then wins.
func (s *store) owner(u *models.User, agentID, agencyID string) (string, string, error) {
	switch u.Role {
	case models.RoleAgent:
		return u.ID, u.AgencyID, nil
	case models.RoleAgencyAdmin:
		if agentID != "" {
			ag, ok := s.agents.Lookup(agentID)
			if !ok || ag.AgencyID != u.AgencyID {
				return "", "", fmt.Errorf("%w: agent %q is not in your agency", ErrInvalidInput, agentID)
			}
		}
		return agentID, u.AgencyID, nil
	}
	if agentID != "" {
		if ag, ok := s.agents.Lookup(agentID); ok {
			return agentID, ag.AgencyID, nil
		}
	}
	return agentID, agencyID, nil
}
