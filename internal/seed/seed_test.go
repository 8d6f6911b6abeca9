package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance-portal/internal/models"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.Len(t, d.Agencies, 3)
	assert.Len(t, d.Agents, 4)
	assert.Len(t, d.Customers, 5)
	assert.Len(t, d.Quotes, 3)

	q := d.Quotes[0]
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, models.InsuranceAuto, q.InsuranceType)
	assert.Equal(t, models.QuoteStatusPending, q.Status)
	assert.Equal(t, 1200.0, q.Premium)
	assert.Equal(t, "2025-08-15", q.ValidUntil)
	assert.True(t, q.CreatedAt.Equal(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)))

	assert.Equal(t, "10001", d.Agencies[0].Address.ZipCode)
	assert.Equal(t, models.StatusInactive, d.Agencies[2].Status)
	assert.Equal(t, 8.5, d.Agents[0].CommissionRate)
}

func TestLoad_ReferencesResolve(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	agencies := map[string]string{}
	for _, a := range d.Agencies {
		agencies[a.ID] = a.Name
	}
	agents := map[string]string{}
	for _, a := range d.Agents {
		agents[a.ID] = a.FullName()
		assert.Equal(t, agencies[a.AgencyID], a.AgencyName, a.ID)
	}
	for _, c := range d.Customers {
		assert.Contains(t, agents, c.AgentID, c.ID)
		assert.Contains(t, agencies, c.AgencyID, c.ID)
	}
	for _, q := range d.Quotes {
		assert.Equal(t, agents[q.AgentID], q.AgentName, q.ID)
		assert.Equal(t, agencies[q.AgencyID], q.AgencyName, q.ID)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("agencies: [oops"))
	assert.Error(t, err)
}
