package stats

import (
	"sort"
	"time"

	"insurance-portal/internal/format"
	"insurance-portal/internal/models"
)

const recentQuotes = 5

// RecentQuote is one row of the recent activity list, with the display
// strings the row shows.
type RecentQuote struct {
	models.Quote
	Age               string `json:"age"`
	PremiumDisplay    string `json:"premiumDisplay"`
	CreatedDisplay    string `json:"createdDisplay"`
	ValidUntilDisplay string `json:"validUntilDisplay"`
}

type Month struct {
	Month   string  `json:"month"` // "Jan 2025"
	Quotes  int     `json:"quotes"`
	Premium float64 `json:"premium"`
}

// Dashboard aggregates the caller's scoped collections. Pointer fields are
// nil when the caller's role does not see that screen.
type Dashboard struct {
	Welcome             string        `json:"welcome"`
	TotalQuotes         int           `json:"totalQuotes"`
	QuotesThisMonth     int           `json:"quotesThisMonth"`
	TotalPremium        float64       `json:"totalPremium"`
	TotalPremiumDisplay string        `json:"totalPremiumDisplay"`
	TotalAgencies       *int          `json:"totalAgencies,omitempty"`
	TotalAgents         *int          `json:"totalAgents,omitempty"`
	ActiveAgents        *int          `json:"activeAgents,omitempty"`
	TotalCustomers      int           `json:"totalCustomers"`
	ActiveCustomers     int           `json:"activeCustomers"`
	RecentQuotes        []RecentQuote `json:"recentQuotes"`
	MonthlyStats        []Month       `json:"monthlyStats"`
}

// Inputs are the scoped collections; nil Agencies/Agents mean "not visible".
type Inputs struct {
	User      *models.User
	Quotes    []models.Quote
	Customers []models.Customer
	Agencies  []models.Agency
	Agents    []models.Agent
	Now       time.Time
}

func BuildDashboard(in Inputs) Dashboard {
	d := Dashboard{
		Welcome:        welcome(in.User),
		TotalQuotes:    len(in.Quotes),
		TotalCustomers: len(in.Customers),
		RecentQuotes:   []RecentQuote{},
		MonthlyStats:   []Month{},
	}
	if in.Agencies != nil {
		n := len(in.Agencies)
		d.TotalAgencies = &n
	}
	if in.Agents != nil {
		n := len(in.Agents)
		d.TotalAgents = &n
		active := 0
		for _, a := range in.Agents {
			if a.Status == models.StatusActive {
				active++
			}
		}
		d.ActiveAgents = &active
	}
	for _, c := range in.Customers {
		if c.Status == models.StatusActive {
			d.ActiveCustomers++
		}
	}
	now := in.Now.UTC()

	byMonth := map[time.Time]*Month{}
	for _, q := range in.Quotes {
		d.TotalPremium += q.Premium
		created := q.CreatedAt.UTC()
		if created.Year() == now.Year() && created.Month() == now.Month() {
			d.QuotesThisMonth++
		}
		key := time.Date(created.Year(), created.Month(), 1, 0, 0, 0, 0, time.UTC)
		m, ok := byMonth[key]
		if !ok {
			m = &Month{Month: key.Format("Jan 2006")}
			byMonth[key] = m
		}
		m.Quotes++
		m.Premium += q.Premium
	}
	keys := make([]time.Time, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	for _, k := range keys {
		d.MonthlyStats = append(d.MonthlyStats, *byMonth[k])
	}

	recent := make([]models.Quote, len(in.Quotes))
	copy(recent, in.Quotes)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentQuotes {
		recent = recent[:recentQuotes]
	}
	for _, q := range recent {
		d.RecentQuotes = append(d.RecentQuotes, RecentQuote{
			Quote:             q,
			Age:               format.Age(q.CreatedAt, in.Now),
			PremiumDisplay:    format.Currency(q.Premium),
			CreatedDisplay:    format.DateTime(q.CreatedAt),
			ValidUntilDisplay: format.Date(q.ValidUntil),
		})
	}
	d.TotalPremiumDisplay = format.Currency(d.TotalPremium)
	return d
}

func welcome(u *models.User) string {
	if u == nil {
		return ""
	}
	var scope string
	switch u.Role {
	case models.RoleMasterAdmin:
		scope = "the whole network"
	case models.RoleAgencyAdmin:
		scope = "your agency"
	default:
		scope = "your book of business"
	}
	return "Welcome back, " + u.FirstName + "! Here's what's happening across " + scope + " (" + format.Label(string(u.Role)) + ")."
}
