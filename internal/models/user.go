package models

import "time"

type Role string

const (
	RoleMasterAdmin Role = "master_admin"
	RoleAgencyAdmin Role = "agency_admin"
	RoleAgent       Role = "agent"
)

type User struct {
	ID        string    `json:"id" yaml:"id"`
	Email     string    `json:"email" yaml:"email"`
	FirstName string    `json:"firstName" yaml:"firstName"`
	LastName  string    `json:"lastName" yaml:"lastName"`
	Role      Role      `json:"role" yaml:"role"` // master_admin | agency_admin | agent
	Status    Status    `json:"status" yaml:"status"`
	AgencyID  string    `json:"agencyId,omitempty" yaml:"agencyId,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (u *User) FullName() string { return fullName(u.FirstName, u.LastName) }
