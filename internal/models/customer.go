package models

import "time"

type Customer struct {
	ID          string    `json:"id" yaml:"id"`
	FirstName   string    `json:"firstName" yaml:"firstName"`
	LastName    string    `json:"lastName" yaml:"lastName"`
	Email       string    `json:"email" yaml:"email"`
	Phone       string    `json:"phone" yaml:"phone"`
	DateOfBirth string    `json:"dateOfBirth" yaml:"dateOfBirth"` // YYYY-MM-DD
	Address     Address   `json:"address" yaml:"address"`
	Status      Status    `json:"status" yaml:"status"`
	AgentID     string    `json:"agentId" yaml:"agentId"`
	AgencyID    string    `json:"agencyId" yaml:"agencyId"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (c *Customer) FullName() string { return fullName(c.FirstName, c.LastName) }

type CustomerDraft struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"dateOfBirth"`
	Address     Address `json:"address"`
	Status      Status  `json:"status"`
	AgentID     string  `json:"agentId"`
	AgencyID    string  `json:"agencyId"`
}
