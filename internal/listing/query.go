package listing

import (
	"strings"

	"insurance-portal/internal/models"
)

// Query is the user-controlled part of a list request. Empty fields are
// ignored.
type Query struct {
	Q             string
	Status        string
	InsuranceType string
	AgencyID      string // honored for master admins only
}

// Principal is the identity a collection is scoped to.
type Principal struct {
	ID       string
	Role     models.Role
	AgencyID string
}

// PrincipalOf returns nil for a nil user; a nil principal sees nothing.
func PrincipalOf(u *models.User) *Principal {
	if u == nil {
		return nil
	}
	return &Principal{ID: u.ID, Role: u.Role, AgencyID: u.AgencyID}
}

func (q Query) normalized() Query {
	return Query{
		Q:             strings.ToLower(strings.TrimSpace(q.Q)),
		Status:        strings.TrimSpace(q.Status),
		InsuranceType: strings.TrimSpace(q.InsuranceType),
		AgencyID:      strings.TrimSpace(q.AgencyID),
	}
}
