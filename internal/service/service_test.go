package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"insurance-portal/internal/listing"
	"insurance-portal/internal/models"
	"insurance-portal/internal/seed"
	"insurance-portal/internal/session"
)

var (
	masterAdmin = &models.User{ID: "1", FirstName: "Master", LastName: "Admin", Role: models.RoleMasterAdmin}
	agencyAdmin = &models.User{ID: "2", FirstName: "Agency", LastName: "Admin", Role: models.RoleAgencyAdmin, AgencyID: "agency-1"}
	agentUser   = &models.User{ID: "a1", FirstName: "Sarah", LastName: "Johnson", Role: models.RoleAgent, AgencyID: "agency-1"}
)

var fixedNow = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

func newPortal(t *testing.T) *Portal {
	t.Helper()
	d, err := seed.Load()
	require.NoError(t, err)
	return NewPortal(d, zerolog.Nop(), func() time.Time { return fixedNow })
}

func agencyIDs(items []models.Agency) []string {
	out := []string{}
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestAgencies_StatusFilterKeepsOrder(t *testing.T) {
	p := newPortal(t)
	res, err := p.Agencies.List(masterAdmin, listing.Query{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, []string{"agency-1", "agency-2"}, agencyIDs(res.Items))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, res.Stats.Active)
	assert.Equal(t, 2, res.Stats.StatesCovered)
}

func TestAgencies_MasterOnly(t *testing.T) {
	p := newPortal(t)
	for _, u := range []*models.User{agencyAdmin, agentUser, nil} {
		_, err := p.Agencies.List(u, listing.Query{})
		assert.ErrorIs(t, err, ErrForbidden)
	}
	_, err := p.Agencies.Create(agencyAdmin, models.AgencyDraft{Name: "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAgencies_CreateUpdateDelete(t *testing.T) {
	p := newPortal(t)
	ag, err := p.Agencies.Create(masterAdmin, models.AgencyDraft{Name: " Harbor Mutual ", Address: models.Address{State: "WA"}})
	require.NoError(t, err)
	assert.Equal(t, "Harbor Mutual", ag.Name)
	assert.Equal(t, models.StatusActive, ag.Status)
	assert.Equal(t, fixedNow, ag.CreatedAt)

	up, err := p.Agencies.Update(masterAdmin, ag.ID, models.AgencyDraft{Name: "Harbor", Status: models.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, ag.ID, up.ID)
	assert.Equal(t, ag.CreatedAt, up.CreatedAt)
	assert.Equal(t, "Harbor", up.Name)
	assert.Equal(t, models.StatusInactive, up.Status)
	assert.Empty(t, up.Address.State, "update replaces every editable field")

	_, err = p.Agencies.Update(masterAdmin, ag.ID, models.AgencyDraft{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, p.Agencies.Delete(masterAdmin, ag.ID, listing.Declined), listing.ErrNotConfirmed)
	require.NoError(t, p.Agencies.Delete(masterAdmin, ag.ID, listing.Confirmed))
	_, err = p.Agencies.Get(masterAdmin, ag.ID)
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestContactPhonesAreNormalized(t *testing.T) {
	p := newPortal(t)
	ag, err := p.Agencies.Create(masterAdmin, models.AgencyDraft{Name: "Harbor", Phone: " 555.123.4567 "})
	require.NoError(t, err)
	assert.Equal(t, "(555) 123-4567", ag.Phone)

	ag, err = p.Agencies.Update(masterAdmin, ag.ID, models.AgencyDraft{Name: "Harbor", Phone: "+44 20 7946 0958"})
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7946 0958", ag.Phone, "non-US numbers are kept as typed")

	cu, err := p.Customers.Create(agentUser, models.CustomerDraft{FirstName: "Ana", LastName: "Ruiz", Phone: "5559876543"})
	require.NoError(t, err)
	assert.Equal(t, "(555) 987-6543", cu.Phone)

	cu, err = p.Customers.Update(agentUser, cu.ID, models.CustomerDraft{FirstName: "Ana", LastName: "Ruiz"})
	require.NoError(t, err)
	assert.Equal(t, "(555) 987-6543", cu.Phone, "a blank phone keeps the stored one")
}

func TestAgencies_DeleteMissingLeavesCollection(t *testing.T) {
	p := newPortal(t)
	before, err := p.Agencies.List(masterAdmin, listing.Query{})
	require.NoError(t, err)

	err = p.Agencies.Delete(masterAdmin, "nope", listing.Confirmed)
	assert.True(t, errors.Is(err, listing.ErrNotFound))

	after, err := p.Agencies.List(masterAdmin, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
}

func TestAgents_AgencyAdminSeesOwnAgency(t *testing.T) {
	p := newPortal(t)
	res, err := p.Agents.List(agencyAdmin, listing.Query{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	for _, a := range res.Items {
		assert.Equal(t, "agency-1", a.AgencyID)
	}

	res, err = p.Agents.List(agencyAdmin, listing.Query{AgencyID: "agency-2"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2, "agency filter is ignored below master admin")

	_, err = p.Agents.Get(agencyAdmin, "a3")
	assert.ErrorIs(t, err, listing.ErrNotFound)

	_, err = p.Agents.List(agentUser, listing.Query{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAgents_Create(t *testing.T) {
	p := newPortal(t)
	a, err := p.Agents.Create(agencyAdmin, models.AgentDraft{FirstName: "Tom", LastName: "Hart", AgencyID: "agency-2", CommissionRate: "7.25"})
	require.NoError(t, err)
	assert.Equal(t, "agency-1", a.AgencyID)
	assert.Equal(t, "Prime Insurance Agency", a.AgencyName)
	assert.Equal(t, 7.25, a.CommissionRate)
	assert.Equal(t, models.StatusActive, a.Status)

	b, err := p.Agents.Create(masterAdmin, models.AgentDraft{FirstName: "Ann", AgencyID: "agency-2"})
	require.NoError(t, err)
	assert.Equal(t, "SecureLife Insurance", b.AgencyName)
	assert.Zero(t, b.CommissionRate)

	up, err := p.Agents.Update(masterAdmin, b.ID, models.AgentDraft{LastName: "Lee"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", up.FirstName)
	assert.Equal(t, "Lee", up.LastName)
	assert.Equal(t, "agency-2", up.AgencyID)
}

func TestCustomers_AgentSeesOwn(t *testing.T) {
	p := newPortal(t)
	res, err := p.Customers.List(agentUser, listing.Query{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	for _, c := range res.Items {
		assert.Equal(t, "a1", c.AgentID)
	}
	assert.Equal(t, 1, res.Stats.Inactive)

	res, err = p.Customers.List(agentUser, listing.Query{Q: "jessica"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "c4", res.Items[0].ID)
}

func TestCustomers_CreateStampsOwner(t *testing.T) {
	p := newPortal(t)
	c, err := p.Customers.Create(agentUser, models.CustomerDraft{FirstName: "Nora", AgentID: "a3", AgencyID: "agency-2"})
	require.NoError(t, err)
	assert.Equal(t, "a1", c.AgentID)
	assert.Equal(t, "agency-1", c.AgencyID)

	_, err = p.Customers.Create(agencyAdmin, models.CustomerDraft{FirstName: "Ola", AgentID: "a3"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	m, err := p.Customers.Create(masterAdmin, models.CustomerDraft{FirstName: "Pia", AgentID: "a3"})
	require.NoError(t, err)
	assert.Equal(t, "agency-2", m.AgencyID)

	up, err := p.Customers.Update(agentUser, c.ID, models.CustomerDraft{Email: "nora@example.com", AgentID: "a2"})
	require.NoError(t, err)
	assert.Equal(t, "Nora", up.FirstName)
	assert.Equal(t, "nora@example.com", up.Email)
	assert.Equal(t, "a1", up.AgentID, "agents cannot hand customers over")

	_, err = p.Customers.Update(agentUser, "c2", models.CustomerDraft{FirstName: "x"})
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestQuotes_CreateFromFormText(t *testing.T) {
	p := newPortal(t)
	q, err := p.Quotes.Create(agentUser, models.QuoteDraft{
		CustomerID: "c1",
		Premium:    "1200",
		Deductible: "500",
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, q.Premium)
	assert.Equal(t, 500.0, q.Deductible)
	assert.Zero(t, q.CoverageAmount)
	assert.Equal(t, models.QuoteStatusDraft, q.Status)
	assert.Equal(t, models.InsuranceAuto, q.InsuranceType)
	assert.Equal(t, "John Smith", q.CustomerName)
	assert.Equal(t, "a1", q.AgentID)
	assert.Equal(t, "Sarah Johnson", q.AgentName)
	assert.Equal(t, "agency-1", q.AgencyID)
	assert.Equal(t, "Prime Insurance Agency", q.AgencyName)

	_, err = p.Quotes.Create(agentUser, models.QuoteDraft{CustomerID: "c3"})
	assert.ErrorIs(t, err, ErrInvalidInput, "customers outside scope cannot be quoted")

	_, err = p.Quotes.Create(agentUser, models.QuoteDraft{InsuranceType: "pet"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	free, err := p.Quotes.Create(agentUser, models.QuoteDraft{CustomerName: "Walk In", Premium: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "Walk In", free.CustomerName)
	assert.Zero(t, free.Premium)
}

func TestQuotes_MasterAgencyFallsBackToCustomer(t *testing.T) {
	p := newPortal(t)
	q, err := p.Quotes.Create(masterAdmin, models.QuoteDraft{CustomerID: "c3"})
	require.NoError(t, err)
	assert.Equal(t, "agency-2", q.AgencyID)
	assert.Equal(t, "SecureLife Insurance", q.AgencyName)
}

func TestQuotes_UpdatePreservesIdentity(t *testing.T) {
	p := newPortal(t)
	orig, err := p.Quotes.Get(agentUser, "q1")
	require.NoError(t, err)

	q, err := p.Quotes.Update(agentUser, "q1", models.QuoteDraft{
		CustomerName: "John A. Smith",
		Status:       models.QuoteStatusApproved,
		Premium:      "1300",
		Terms:        "6 months",
	})
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, orig.CreatedAt, q.CreatedAt)
	assert.Equal(t, fixedNow, q.UpdatedAt)
	assert.Equal(t, models.QuoteStatusApproved, q.Status)
	assert.Equal(t, models.InsuranceAuto, q.InsuranceType)
	assert.Equal(t, "John A. Smith", q.CustomerName)
	assert.Equal(t, "c1", q.CustomerID)
	assert.Equal(t, 1300.0, q.Premium)
	assert.Zero(t, q.Deductible, "money fields are replaced wholesale")

	q, err = p.Quotes.Update(agentUser, "q1", models.QuoteDraft{Premium: "1300"})
	require.NoError(t, err)
	assert.Empty(t, q.CustomerName, "customer name is replaced, not merged")
	assert.Equal(t, models.QuoteStatusApproved, q.Status)

	q, err = p.Quotes.Update(agentUser, "q1", models.QuoteDraft{CustomerID: "c4"})
	require.NoError(t, err)
	assert.Equal(t, "c4", q.CustomerID)
	assert.Equal(t, "Jessica Wilson", q.CustomerName)

	_, err = p.Quotes.Update(agentUser, "q2", models.QuoteDraft{})
	assert.ErrorIs(t, err, listing.ErrNotFound)

	_, err = p.Quotes.Update(agencyAdmin, "missing", models.QuoteDraft{})
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestQuotes_UpdatedAtNeverGoesBackwards(t *testing.T) {
	d, err := seed.Load()
	require.NoError(t, err)
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPortal(d, zerolog.Nop(), func() time.Time { return past })

	q, err := p.Quotes.Update(masterAdmin, "q3", models.QuoteDraft{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 11, 20, 0, 0, time.UTC), q.UpdatedAt)
}

func TestQuotes_RapidCreatesGetUniqueIDs(t *testing.T) {
	p := newPortal(t)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		q, err := p.Quotes.Create(masterAdmin, models.QuoteDraft{CustomerName: "n"})
		require.NoError(t, err)
		require.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
	res, err := p.Quotes.List(masterAdmin, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 203, res.Total)
}

func TestDashboard_ScopedPerRole(t *testing.T) {
	p := newPortal(t)
	d, err := p.Dashboard(agentUser)
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalQuotes)
	assert.Equal(t, 1, d.QuotesThisMonth)
	assert.Equal(t, 1200.0, d.TotalPremium)
	assert.Equal(t, "$1,200.00", d.TotalPremiumDisplay)
	assert.Nil(t, d.TotalAgencies)
	assert.Nil(t, d.TotalAgents)
	assert.Nil(t, d.ActiveAgents)
	assert.Equal(t, 2, d.TotalCustomers)
	assert.Equal(t, 1, d.ActiveCustomers)
	require.Len(t, d.RecentQuotes, 1)
	assert.Equal(t, "Aug 15, 2025", d.RecentQuotes[0].ValidUntilDisplay)

	d, err = p.Dashboard(agencyAdmin)
	require.NoError(t, err)
	require.NotNil(t, d.ActiveAgents)
	assert.Equal(t, 2, *d.ActiveAgents)
	assert.Equal(t, 1, d.QuotesThisMonth, "q2 was created in June")

	d, err = p.Dashboard(masterAdmin)
	require.NoError(t, err)
	assert.Equal(t, 3, d.TotalQuotes)
	require.NotNil(t, d.TotalAgencies)
	assert.Equal(t, 3, *d.TotalAgencies)

	_, err = p.Dashboard(nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func newAuth(t *testing.T, delay time.Duration) (*AuthService, *session.MemoryRevocations) {
	t.Helper()
	accts, err := session.NewAccounts(bcrypt.MinCost)
	require.NoError(t, err)
	rev := session.NewMemoryRevocations()
	return NewAuthService(accts, rev, AuthOptions{SessionSecret: "test-secret", TTL: time.Hour, Delay: delay}, zerolog.Nop()), rev
}

func TestAuth_LoginValidation(t *testing.T) {
	a, _ := newAuth(t, 0)
	_, err := a.Login(context.Background(), nil, LoginInput{Email: "not-an-email", Password: "123"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"email":    "Invalid email address",
		"password": "Password must be at least 6 characters",
	}, verr.Fields)

	_, err = a.Login(context.Background(), nil, LoginInput{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is required", verr.Fields["email"])
	assert.Equal(t, "Password is required", verr.Fields["password"])
}

func TestAuth_LoginAuthenticateLogout(t *testing.T) {
	a, _ := newAuth(t, 0)
	ctx := context.Background()

	_, err := a.Login(ctx, nil, LoginInput{Email: "agent@demo.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Login(ctx, nil, LoginInput{Email: "nobody@demo.com", Password: session.DemoPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	st, err := a.Login(ctx, nil, LoginInput{Email: "agent@demo.com", Password: session.DemoPassword})
	require.NoError(t, err)
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	require.NotNil(t, st.User)
	assert.Equal(t, "a1", st.User.ID)
	require.NotEmpty(t, st.Token)

	u, claims, err := a.Authenticate(ctx, st.Token)
	require.NoError(t, err)
	assert.Equal(t, "a1", u.ID)
	assert.Equal(t, models.RoleAgent, claims.Role)

	me := a.Me(u, st.Token)
	assert.True(t, me.IsAuthenticated)
	assert.Empty(t, me.Token)

	require.NoError(t, a.Logout(ctx, st.Token))
	_, _, err = a.Authenticate(ctx, st.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = a.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, a.Logout(ctx, "garbage"))
}

func TestAuth_LoginDelayHonorsCancellation(t *testing.T) {
	a, _ := newAuth(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st, err := a.Login(ctx, nil, LoginInput{Email: "agent@demo.com", Password: session.DemoPassword})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, st.IsLoading)
	assert.False(t, st.IsAuthenticated)
}

func TestAuth_SessionLoadingDuringDelay(t *testing.T) {
	a, _ := newAuth(t, time.Hour)
	s := session.New()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := a.Login(ctx, s, LoginInput{Email: "agent@demo.com", Password: session.DemoPassword})
		done <- err
	}()

	assert.Eventually(t, func() bool { return s.State().IsLoading }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, s.State().IsLoading)

	a, _ = newAuth(t, 0)
	st, err := a.Login(context.Background(), s, LoginInput{Email: "agent@demo.com", Password: session.DemoPassword})
	require.NoError(t, err)
	assert.False(t, st.IsLoading)
	assert.True(t, s.State().IsAuthenticated)
}
