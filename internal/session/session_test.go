package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"insurance-portal/internal/models"
	"insurance-portal/internal/utils"
)

func TestSession_LoginLogout(t *testing.T) {
	s := New()
	assert.Equal(t, State{}, s.State())

	s.SetLoading(true)
	assert.True(t, s.State().IsLoading)

	u := &models.User{ID: "2", Role: models.RoleAgencyAdmin, AgencyID: "agency-1"}
	s.Login(u, "tok")
	st := s.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "2", st.User.ID)
	assert.Equal(t, "tok", st.Token)
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)

	// snapshots are copies
	st.User.Role = models.RoleMasterAdmin
	u.AgencyID = "agency-9"
	assert.Equal(t, models.RoleAgencyAdmin, s.User().Role)
	assert.Equal(t, "agency-1", s.User().AgencyID)

	s.Logout()
	assert.Equal(t, State{}, s.State())
	assert.Nil(t, s.User())
}

func TestSession_Isolated(t *testing.T) {
	a, b := New(), New()
	a.Login(&models.User{ID: "1"}, "x")
	assert.False(t, b.State().IsAuthenticated)
}

func TestAccounts(t *testing.T) {
	accts, err := NewAccounts(bcrypt.MinCost)
	require.NoError(t, err)
	ctx := context.Background()

	u, hash, err := accts.GetByEmail(ctx, "Admin@Agency.com ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, models.RoleAgencyAdmin, u.Role)
	assert.Equal(t, "agency-1", u.AgencyID)
	assert.True(t, utils.CheckPassword(hash, DemoPassword))

	u, _, err = accts.GetByEmail(ctx, "nobody@demo.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = accts.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "agent@demo.com", u.Email)

	users := accts.List()
	require.Len(t, users, 3)
	assert.Equal(t, "1", users[0].ID)
}

func TestMemoryRevocations(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRevocations()
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Revoke(ctx, "j1", now.Add(time.Hour)))
	require.NoError(t, m.Revoke(ctx, "j2", now.Add(-time.Hour)))

	ok, _ := m.Revoked(ctx, "j1")
	assert.True(t, ok)
	ok, _ = m.Revoked(ctx, "j2")
	assert.False(t, ok)

	now = now.Add(2 * time.Hour)
	ok, _ = m.Revoked(ctx, "j1")
	assert.False(t, ok)
}

func TestRedisRevocations(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisRevocationsFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer r.Close()
	ctx := context.Background()

	require.NoError(t, r.Ping(ctx))
	require.NoError(t, r.Revoke(ctx, "j1", time.Now().Add(time.Hour)))

	ok, err := r.Revoked(ctx, "j1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Revoked(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = r.Revoked(ctx, "j1")
	require.NoError(t, err)
	assert.False(t, ok)
}
