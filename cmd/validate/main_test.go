package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/neo-impact-service/internal/adapter/catalog"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

func mockRequests(t *testing.T) []domain.SimulationRequest {
	t.Helper()
	requests, err := loadJSON[domain.SimulationRequest](filepath.Join("..", "..", "data", "mock", "simulation_requests.json"))
	require.NoError(t, err)
	return requests
}

func TestMockFixturePasses(t *testing.T) {
	requests := mockRequests(t)

	for _, p := range []*phase{
		validateCatalogParity(requests, catalog.SeedObjects()),
		validateImpactInvariants(requests),
		validateRandomRanges(requests, domain.NewSeededRand(1), 50),
	} {
		assert.True(t, p.passed(), "%s: %v", p.name, p.errors)
	}
}

func TestCatalogParity_DetectsDrift(t *testing.T) {
	requests := mockRequests(t)
	requests[0].VelocityKms = 99
	requests[1].ObjectID = "MISSING"

	p := validateCatalogParity(requests, catalog.SeedObjects())
	require.Len(t, p.errors, 2)
	assert.Contains(t, p.errors[0], "99942")
	assert.Contains(t, p.errors[1], `"MISSING" not in catalog`)
}

func TestImpactInvariants_ReportsInvalidInput(t *testing.T) {
	p := validateImpactInvariants([]domain.SimulationRequest{{ObjectID: "bad"}})
	require.Len(t, p.errors, 1)
	assert.Contains(t, p.errors[0], "impact analysis")
}

func TestValidateResults(t *testing.T) {
	requests := mockRequests(t)[:2]
	sim := domain.NewSimulator(nil, domain.NewSeededRand(3))

	results := make([]domain.SimulationResult, 0, len(requests))
	for _, req := range requests {
		r, err := sim.Simulate(req)
		require.NoError(t, err)
		results = append(results, r)
	}
	assert.True(t, validateResults(results, requests).passed())

	results[1].Report.Impact.KineticEnergyJoules *= 2
	results[0].Report.Environment.Severity = domain.SeverityMinimal
	p := validateResults(results, requests)
	assert.Len(t, p.errors, 2)

	assert.Len(t, validateResults(results[:1], requests).errors, 1)
}

func TestRelEq(t *testing.T) {
	assert.True(t, relEq(1e20, 1e20*(1+1e-12)))
	assert.False(t, relEq(1, 1.001))
	assert.True(t, relEq(0, 0))
}
