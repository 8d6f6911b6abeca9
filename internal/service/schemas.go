package service

import (
	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
)

// Search fields and ownership rules for each screen.

var AgencySchema = listing.Schema[models.Agency]{
	ID: func(a models.Agency) string { return a.ID },
	Search: func(a models.Agency) []string {
		return []string{a.Name, a.Email, a.Phone, a.LicenseNumber, a.Address.City, a.Address.State}
	},
	Scope:  listing.OwnedBy(func(a models.Agency) string { return a.ID }, nil),
	Status: func(a models.Agency) string { return string(a.Status) },
}

var AgentSchema = listing.Schema[models.Agent]{
	ID: func(a models.Agent) string { return a.ID },
	Search: func(a models.Agent) []string {
		return []string{a.FullName(), a.Email, a.Phone, a.LicenseNumber, a.AgencyName}
	},
	Scope:    listing.OwnedBy(func(a models.Agent) string { return a.AgencyID }, nil),
	Status:   func(a models.Agent) string { return string(a.Status) },
	AgencyID: func(a models.Agent) string { return a.AgencyID },
}

var CustomerSchema = listing.Schema[models.Customer]{
	ID: func(c models.Customer) string { return c.ID },
	Search: func(c models.Customer) []string {
		return []string{c.FullName(), c.Email, c.Phone, c.Address.City, c.Address.State}
	},
	Scope: listing.OwnedBy(
		func(c models.Customer) string { return c.AgencyID },
		func(c models.Customer) string { return c.AgentID },
	),
	Status: func(c models.Customer) string { return string(c.Status) },
}

var QuoteSchema = listing.Schema[models.Quote]{
	ID: func(q models.Quote) string { return q.ID },
	Search: func(q models.Quote) []string {
		return []string{q.ID, q.CustomerName, q.AgentName, q.AgencyName}
	},
	Scope: listing.OwnedBy(
		func(q models.Quote) string { return q.AgencyID },
		func(q models.Quote) string { return q.AgentID },
	),
	Status:        func(q models.Quote) string { return string(q.Status) },
	InsuranceType: func(q models.Quote) string { return string(q.InsuranceType) },
	AgencyID:      func(q models.Quote) string { return q.AgencyID },
}
