// Package stats computes the summary cards shown above each list. Every
// function takes the already filtered slice.
package stats

import (
	"math"

	"insurance-portal/internal/models"
)

type Agencies struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Inactive      int `json:"inactive"`
	StatesCovered int `json:"statesCovered"`
}

func ForAgencies(items []models.Agency) Agencies {
	s := Agencies{Total: len(items)}
	states := map[string]struct{}{}
	for _, a := range items {
		switch a.Status {
		case models.StatusActive:
			s.Active++
		case models.StatusInactive:
			s.Inactive++
		}
		if a.Address.State != "" {
			states[a.Address.State] = struct{}{}
		}
	}
	s.StatesCovered = len(states)
	return s
}

type Agents struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	AverageCommission float64 `json:"averageCommission"`
	Agencies          int     `json:"agencies"`
}

func ForAgents(items []models.Agent) Agents {
	s := Agents{Total: len(items)}
	agencies := map[string]struct{}{}
	var sum float64
	for _, a := range items {
		if a.Status == models.StatusActive {
			s.Active++
		}
		sum += a.CommissionRate
		agencies[a.AgencyID] = struct{}{}
	}
	if len(items) > 0 {
		s.AverageCommission = round1(sum / float64(len(items)))
	}
	s.Agencies = len(agencies)
	return s
}

type Customers struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	States   int `json:"states"`
}

func ForCustomers(items []models.Customer) Customers {
	s := Customers{Total: len(items)}
	states := map[string]struct{}{}
	for _, c := range items {
		switch c.Status {
		case models.StatusActive:
			s.Active++
		case models.StatusInactive:
			s.Inactive++
		}
		if c.Address.State != "" {
			states[c.Address.State] = struct{}{}
		}
	}
	s.States = len(states)
	return s
}

type Quotes struct {
	Total        int                        `json:"total"`
	TotalPremium float64                    `json:"totalPremium"`
	Pending      int                        `json:"pending"`
	Approved     int                        `json:"approved"`
	ByStatus     map[models.QuoteStatus]int `json:"byStatus"`
}

func ForQuotes(items []models.Quote) Quotes {
	s := Quotes{Total: len(items), ByStatus: make(map[models.QuoteStatus]int, len(models.QuoteStatuses))}
	for _, st := range models.QuoteStatuses {
		s.ByStatus[st] = 0
	}
	for _, q := range items {
		s.TotalPremium += q.Premium
		s.ByStatus[q.Status]++
	}
	s.Pending = s.ByStatus[models.QuoteStatusPending]
	s.Approved = s.ByStatus[models.QuoteStatusApproved]
	return s
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
