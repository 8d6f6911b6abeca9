package service

import (
	"fmt"
	"strings"

	"insurance-portal/internal/access"
	"insurance-portal/internal/format"
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/stats"
)

type AgencyService struct{ s *store }

func (a *AgencyService) List(u *models.User, q listing.Query) (ListResult[models.Agency, stats.Agencies], error) {
	if !access.CanView(u, access.Agencies) {
		return ListResult[models.Agency, stats.Agencies]{}, ErrForbidden
	}
	items := a.s.agencies.List(listing.PrincipalOf(u), q)
	return ListResult[models.Agency, stats.Agencies]{Items: items, Total: len(items), Stats: stats.ForAgencies(items)}, nil
}

func (a *AgencyService) Get(u *models.User, id string) (models.Agency, error) {
	if !access.CanView(u, access.Agencies) {
		return models.Agency{}, ErrForbidden
	}
	return a.s.agencies.Get(listing.PrincipalOf(u), id)
}

func (a *AgencyService) Create(u *models.User, d models.AgencyDraft) (models.Agency, error) {
	if !access.CanView(u, access.Agencies) {
		return models.Agency{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Agency{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	now := a.s.now().UTC()
	ag := models.Agency{
		ID:            a.s.ids.New("ag"),
		Name:          strings.TrimSpace(d.Name),
		Email:         strings.TrimSpace(d.Email),
		Phone:         phone(d.Phone),
		Address:       trimAddress(d.Address),
		Status:        orDefault(d.Status, models.StatusActive),
		LicenseNumber: strings.TrimSpace(d.LicenseNumber),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	a.s.agencies.Insert(ag)
	a.s.log.Info().Str("agency", ag.ID).Str("by", u.ID).Msg("agency created")
	return ag, nil
}

// Update replaces every editable field; an empty status keeps the current one.
func (a *AgencyService) Update(u *models.User, id string, d models.AgencyDraft) (models.Agency, error) {
	if !access.CanView(u, access.Agencies) {
		return models.Agency{}, ErrForbidden
	}
	if d.Status != "" && !d.Status.Valid() {
		return models.Agency{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	ag, err := a.s.agencies.Update(listing.PrincipalOf(u), id, func(cur models.Agency) models.Agency {
		cur.Name = strings.TrimSpace(d.Name)
		cur.Email = strings.TrimSpace(d.Email)
		cur.Phone = phone(d.Phone)
		cur.Address = trimAddress(d.Address)
		cur.Status = orDefault(d.Status, cur.Status)
		cur.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
		cur.UpdatedAt = a.s.now.stamp(cur.UpdatedAt)
		return cur
	})
	if err != nil {
		return models.Agency{}, fmt.Errorf("update agency %s: %w", id, err)
	}
	a.s.log.Info().Str("agency", id).Str("by", u.ID).Msg("agency updated")
	return ag, nil
}

// Delete does not cascade: agents and quotes of the agency stay in place.
func (a *AgencyService) Delete(u *models.User, id string, confirm listing.Confirm) error {
	if !access.CanView(u, access.Agencies) {
		return ErrForbidden
	}
	if err := a.s.agencies.Delete(listing.PrincipalOf(u), id, confirm); err != nil {
		return fmt.Errorf("delete agency %s: %w", id, err)
	}
	a.s.log.Info().Str("agency", id).Str("by", u.ID).Msg("agency deleted")
	return nil
}

func trimAddress(a models.Address) models.Address {
	return models.Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
	}
}

// phone stores ten-digit numbers as "(555) 123-4567"; other input is kept
// as typed.
func phone(v string) string { return format.Phone(strings.TrimSpace(v)) }

// keep returns v trimmed, or cur when v is blank.
func keep(v, cur string) string {
	if v = strings.TrimSpace(v); v == "" {
		return cur
	}
	return v
}
