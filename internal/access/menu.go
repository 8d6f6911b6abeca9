package access

import "insurance-portal/internal/models"

type MenuItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Screen Screen `json:"screen"`
}

// menu is in display order.
var menu = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard", Screen: Dashboard},
	{Label: "Quotes", Path: "/quotes", Screen: Quotes},
	{Label: "Agencies", Path: "/agencies", Screen: Agencies},
	{Label: "Agents", Path: "/agents", Screen: Agents},
	{Label: "Customers", Path: "/customers", Screen: Customers},
}

// Menu returns the navigation entries u may open.
func Menu(u *models.User) []MenuItem {
	out := make([]MenuItem, 0, len(menu))
	for _, m := range menu {
		if CanView(u, m.Screen) {
			out = append(out, m)
		}
	}
	return out
}
