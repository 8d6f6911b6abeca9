// Package access holds the role allow-lists for every screen of the portal
// and the pure checks built on them.
package access

import "insurance-portal/internal/models"

type Screen string

const (
	Dashboard Screen = "dashboard"
	Quotes    Screen = "quotes"
	Agencies  Screen = "agencies"
	Agents    Screen = "agents"
	Customers Screen = "customers"
)

var (
	allRoles   = []models.Role{models.RoleMasterAdmin, models.RoleAgencyAdmin, models.RoleAgent}
	adminRoles = []models.Role{models.RoleMasterAdmin, models.RoleAgencyAdmin}
)

// Screens maps each screen to the roles allowed to open it.
var Screens = map[Screen][]models.Role{
	Dashboard: allRoles,
	Quotes:    allRoles,
	Agencies:  {models.RoleMasterAdmin},
	Agents:    adminRoles,
	Customers: allRoles,
}

// Allowed reports whether role appears in allow. The empty role (no user)
// is never allowed.
func Allowed(role models.Role, allow []models.Role) bool {
	if role == "" {
		return false
	}
	for _, r := range allow {
		if r == role {
			return true
		}
	}
	return false
}

// CanView reports whether u may open screen s. Unknown screens are denied.
func CanView(u *models.User, s Screen) bool {
	if u == nil {
		return false
	}
	return Allowed(u.Role, Screens[s])
}

// CanEditQuote mirrors the ownership rule for a single quote.
func CanEditQuote(u *models.User, q models.Quote) bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case models.RoleMasterAdmin:
		return true
	case models.RoleAgencyAdmin:
		return u.AgencyID != "" && q.AgencyID == u.AgencyID
	case models.RoleAgent:
		return q.AgentID == u.ID
	}
	return false
}
