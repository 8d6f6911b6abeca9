package models

import "time"

type InsuranceType string

const (
	InsuranceAuto     InsuranceType = "auto"
	InsuranceHome     InsuranceType = "home"
	InsuranceLife     InsuranceType = "life"
	InsuranceHealth   InsuranceType = "health"
	InsuranceBusiness InsuranceType = "business"
)

func (t InsuranceType) Valid() bool {
	switch t {
	case InsuranceAuto, InsuranceHome, InsuranceLife, InsuranceHealth, InsuranceBusiness:
		return true
	}
	return false
}

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteStatuses lists every status in display order.
var QuoteStatuses = []QuoteStatus{QuoteStatusDraft, QuoteStatusPending, QuoteStatusApproved, QuoteStatusDeclined, QuoteStatusExpired}

func (s QuoteStatus) Valid() bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Quote struct {
	ID             string        `json:"id" yaml:"id"`
	CustomerID     string        `json:"customerId" yaml:"customerId"`
	CustomerName   string        `json:"customerName" yaml:"customerName"`
	AgentID        string        `json:"agentId" yaml:"agentId"`
	AgentName      string        `json:"agentName" yaml:"agentName"`
	AgencyID       string        `json:"agencyId" yaml:"agencyId"`
	AgencyName     string        `json:"agencyName" yaml:"agencyName"`
	InsuranceType  InsuranceType `json:"insuranceType" yaml:"insuranceType"`
	Status         QuoteStatus   `json:"status" yaml:"status"`
	Premium        float64       `json:"premium" yaml:"premium"`
	Deductible     float64       `json:"deductible" yaml:"deductible"`
	CoverageAmount float64       `json:"coverageAmount" yaml:"coverageAmount"`
	Terms          string        `json:"terms" yaml:"terms"`
	ValidUntil     string        `json:"validUntil" yaml:"validUntil"` // YYYY-MM-DD
	CreatedAt      time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" yaml:"updatedAt"`
	Notes          string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// QuoteDraft is the create/edit form payload. Money fields arrive as form
// text or JSON numbers.
type QuoteDraft struct {
	CustomerID     string        `json:"customerId"`
	CustomerName   string        `json:"customerName"`
	AgencyID       string        `json:"agencyId"`
	InsuranceType  InsuranceType `json:"insuranceType"`
	Status         QuoteStatus   `json:"status"`
	Premium        FormNumber    `json:"premium"`
	Deductible     FormNumber    `json:"deductible"`
	CoverageAmount FormNumber    `json:"coverageAmount"`
	Terms          string        `json:"terms"`
	ValidUntil     string        `json:"validUntil"`
	Notes          string        `json:"notes"`
}
