package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"insurance-portal/internal/models"
	"insurance-portal/internal/utils"
)

// DemoPassword is shared by every demo account.
const DemoPassword = "password123"

type account struct {
	user models.User
	hash string
}

// Accounts is the fixed directory of demo users.
type Accounts struct {
	byEmail map[string]account
}

func demoUsers(now time.Time) []models.User {
	return []models.User{
		{ID: "1", Email: "admin@master.com", FirstName: "Master", LastName: "Admin", Role: models.RoleMasterAdmin, Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: "2", Email: "admin@agency.com", FirstName: "Agency", LastName: "Admin", Role: models.RoleAgencyAdmin, Status: models.StatusActive, AgencyID: "agency-1", CreatedAt: now, UpdatedAt: now},
		{ID: "a1", Email: "agent@demo.com", FirstName: "Sarah", LastName: "Johnson", Role: models.RoleAgent, Status: models.StatusActive, AgencyID: "agency-1", CreatedAt: now, UpdatedAt: now},
	}
}

// NewAccounts hashes DemoPassword for each demo user at the given bcrypt cost.
func NewAccounts(cost int) (*Accounts, error) {
	now := time.Now().UTC()
	a := &Accounts{byEmail: map[string]account{}}
	for _, u := range demoUsers(now) {
		h, err := utils.HashPassword(DemoPassword, cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		a.byEmail[u.Email] = account{user: u, hash: h}
	}
	return a, nil
}

// GetByEmail returns the user and password hash; unknown emails yield a
// nil user and no error.
func (a *Accounts) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	acc, ok := a.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, "", nil
	}
	u := acc.user
	return &u, acc.hash, nil
}

func (a *Accounts) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, acc := range a.byEmail {
		if acc.user.ID == id {
			u := acc.user
			return &u, nil
		}
	}
	return nil, nil
}

// List returns the demo users ordered by id.
func (a *Accounts) List() []models.User {
	out := make([]models.User, 0, len(a.byEmail))
	for _, acc := range a.byEmail {
		out = append(out, acc.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
