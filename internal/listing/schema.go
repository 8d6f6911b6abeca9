package listing

import "insurance-portal/internal/models"

// Schema describes one entity type to the generic filter and reducers.
// Nil extractors disable the matching filter.
type Schema[T any] struct {
	ID     func(T) string
	Search func(T) []string
	Scope  func(T, Principal) bool

	Status        func(T) string
	InsuranceType func(T) string
	AgencyID      func(T) string
}

// OwnedBy builds the ownership rule shared by every screen: master admins
// see everything, agency admins see their agency's records and agents see
// records carrying their own id. A nil agent extractor hides the collection
// from agents entirely.
func OwnedBy[T any](agency, agent func(T) string) func(T, Principal) bool {
	return func(item T, p Principal) bool {
		switch p.Role {
		case models.RoleMasterAdmin:
			return true
		case models.RoleAgencyAdmin:
			return agency != nil && p.AgencyID != "" && agency(item) == p.AgencyID
		case models.RoleAgent:
			return agent != nil && p.ID != "" && agent(item) == p.ID
		}
		return false
	}
}

func (s Schema[T]) visible(item T, p *Principal) bool {
	if p == nil {
		return false
	}
	if s.Scope == nil {
		return true
	}
	return s.Scope(item, *p)
}
