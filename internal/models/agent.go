package models

import "time"

type Agent struct {
	ID             string    `json:"id" yaml:"id"`
	FirstName      string    `json:"firstName" yaml:"firstName"`
	LastName       string    `json:"lastName" yaml:"lastName"`
	Email          string    `json:"email" yaml:"email"`
	Phone          string    `json:"phone" yaml:"phone"`
	AgencyID       string    `json:"agencyId" yaml:"agencyId"`
	AgencyName     string    `json:"agencyName" yaml:"agencyName"` // copied at write time, never re-synced
	Status         Status    `json:"status" yaml:"status"`
	LicenseNumber  string    `json:"licenseNumber" yaml:"licenseNumber"`
	CommissionRate float64   `json:"commissionRate" yaml:"commissionRate"` // percent
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (a *Agent) FullName() string { return fullName(a.FirstName, a.LastName) }

type AgentDraft struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	AgencyID       string     `json:"agencyId"`
	Status         Status     `json:"status"`
	LicenseNumber  string     `json:"licenseNumber"`
	CommissionRate FormNumber `json:"commissionRate"`
}
