package models

import "time"

type Agency struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Email         string    `json:"email" yaml:"email"`
	Phone         string    `json:"phone" yaml:"phone"`
	Address       Address   `json:"address" yaml:"address"`
	Status        Status    `json:"status" yaml:"status"`
	LicenseNumber string    `json:"licenseNumber" yaml:"licenseNumber"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// AgencyDraft is the create/edit form payload.
type AgencyDraft struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       Address `json:"address"`
	Status        Status  `json:"status"`
	LicenseNumber string  `json:"licenseNumber"`
}
