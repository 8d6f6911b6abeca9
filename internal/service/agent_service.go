package service

import (
	"fmt"
	"strings"

	"insurance-portal/internal/access"
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/stats"
)

type AgentService struct{ s *store }

func (a *AgentService) List(u *models.User, q listing.Query) (ListResult[models.Agent, stats.Agents], error) {
	if !access.CanView(u, access.Agents) {
		return ListResult[models.Agent, stats.Agents]{}, ErrForbidden
	}
	items := a.s.agents.List(listing.PrincipalOf(u), q)
	return ListResult[models.Agent, stats.Agents]{Items: items, Total: len(items), Stats: stats.ForAgents(items)}, nil
}

func (a *AgentService) Get(u *models.User, id string) (models.Agent, error) {
	if !access.CanView(u, access.Agents) {
		return models.Agent{}, ErrForbidden
	}
	return a.s.agents.Get(listing.PrincipalOf(u), id)
}

// Create files the agent under the caller's agency for agency admins and
// under the draft's agency for master admins. The agency name is copied
// from the agency collection at this point and never refreshed.
func (a *AgentService) Create(u *models.User, d models.AgentDraft) (models.Agent, error) {
	if !access.CanView(u, access.Agents) {
		return models.Agent{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Agent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	agencyID := strings.TrimSpace(d.AgencyID)
	if u.Role == models.RoleAgencyAdmin {
		agencyID = u.AgencyID
	}
	now := a.s.now().UTC()
	ag := models.Agent{
		ID:             a.s.ids.New("agt"),
		FirstName:      strings.TrimSpace(d.FirstName),
		LastName:       strings.TrimSpace(d.LastName),
		Email:          strings.TrimSpace(d.Email),
		Phone:          phone(d.Phone),
		AgencyID:       agencyID,
		AgencyName:     a.s.agencyName(agencyID),
		Status:         orDefault(d.Status, models.StatusActive),
		LicenseNumber:  strings.TrimSpace(d.LicenseNumber),
		CommissionRate: d.CommissionRate.Float(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	a.s.agents.Insert(ag)
	a.s.log.Info().Str("agent", ag.ID).Str("agency", agencyID).Str("by", u.ID).Msg("agent created")
	return ag, nil
}

// Update keeps the current value for every blank draft field. Only master
// admins may move an agent to another agency.
func (a *AgentService) Update(u *models.User, id string, d models.AgentDraft) (models.Agent, error) {
	if !access.CanView(u, access.Agents) {
		return models.Agent{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Agent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	newAgency := strings.TrimSpace(d.AgencyID)
	if u.Role != models.RoleMasterAdmin {
		newAgency = ""
	}
	agencyName := a.s.agencyName(newAgency)

	ag, err := a.s.agents.Update(listing.PrincipalOf(u), id, func(cur models.Agent) models.Agent {
		cur.FirstName = keep(d.FirstName, cur.FirstName)
		cur.LastName = keep(d.LastName, cur.LastName)
		cur.Email = keep(d.Email, cur.Email)
		cur.Phone = keep(phone(d.Phone), cur.Phone)
		if newAgency != "" && newAgency != cur.AgencyID {
			cur.AgencyID = newAgency
			cur.AgencyName = agencyName
		}
		cur.Status = orDefault(d.Status, cur.Status)
		cur.LicenseNumber = keep(d.LicenseNumber, cur.LicenseNumber)
		if !d.CommissionRate.IsZero() {
			cur.CommissionRate = d.CommissionRate.Float()
		}
		cur.UpdatedAt = a.s.now.stamp(cur.UpdatedAt)
		return cur
	})
	if err != nil {
		return models.Agent{}, fmt.Errorf("update agent %s: %w", id, err)
	}
	a.s.log.Info().Str("agent", id).Str("by", u.ID).Msg("agent updated")
	return ag, nil
}

func (a *AgentService) Delete(u *models.User, id string, confirm listing.Confirm) error {
	if !access.CanView(u, access.Agents) {
		return ErrForbidden
	}
	if err := a.s.agents.Delete(listing.PrincipalOf(u), id, confirm); err != nil {
		return fmt.Errorf("delete agent %s: %w", id, err)
	}
	a.s.log.Info().Str("agent", id).Str("by", u.ID).Msg("agent deleted")
	return nil
}

func (s *store) agencyName(id string) string {
	if id == "" {
		return ""
	}
	ag, ok := s.agencies.Lookup(id)
	if !ok {
		return ""
	}
	return ag.Name
}
