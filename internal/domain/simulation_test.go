package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingModel struct {
	calls int
	err   error
}

func (m *countingModel) ImpactAnalysis(in ImpactInput) (ImpactAnalysisResult, error) {
	m.calls++
	if m.err != nil {
		return ImpactAnalysisResult{}, m.err
	}
	return ComputeImpactAnalysis(in)
}

func TestSimulatorRun(t *testing.T) {
	sim := NewSimulator(nil, NewSeededRand(3))
	report, err := sim.Run(kmInput(0.35, 7.42, 31000))
	require.NoError(t, err)

	assert.Equal(t, 99.9, report.Impact.ImpactProbability)
	assert.Equal(t, 7.42, report.Trajectory.ApproachVelocityKms)
	assert.Equal(t, SeverityContinental, report.Environment.Severity)
	assert.Equal(t, report.Impact.KineticEnergyJoules, report.Environment.KineticEnergyJoules)
}

func TestSimulatorRun_UsesModel(t *testing.T) {
	model := &countingModel{}
	sim := NewSimulator(model, nil)

	_, err := sim.Run(kmInput(0.35, 7.42, 31000))
	require.NoError(t, err)
	assert.Equal(t, 1, model.calls)

	model.err = errors.New("model offline")
	_, err = sim.Run(kmInput(0.35, 7.42, 31000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "impact analysis: model offline")
}

func TestSimulatorRun_FollowsSetRand(t *testing.T) {
	t.Cleanup(func() { SetRand(nil) })
	in := kmInput(0.35, 7.42, 31000)
	sim := NewSimulator(nil, nil)

	SetRand(NewSeededRand(7))
	a, err := sim.Run(in)
	require.NoError(t, err)

	SetRand(NewSeededRand(7))
	b, err := sim.Run(in)
	require.NoError(t, err)

	expected, err := NewSimulator(nil, NewSeededRand(7)).Run(in)
	require.NoError(t, err)

	assert.Equal(t, expected, a)
	assert.Equal(t, a, b)
}

func TestSimulatorRun_InvalidInput(t *testing.T) {
	_, err := NewSimulator(nil, nil).Run(kmInput(0.35, 0, 31000))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseSimulationRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"object_id":"99942","name":"Apophis","diameter_min":0.325,"diameter_max":0.375,"velocity_kms":7.42,"miss_distance_km":31000}`)}
		req, err := ParseSimulationRequest(raw)
		require.NoError(t, err)

		assert.Equal(t, "99942", req.ObjectID)
		assert.Equal(t, "Apophis", req.Name)
		assert.Equal(t, 0.325, req.DiameterMinKm)
		assert.Equal(t, 0.375, req.DiameterMaxKm)
		assert.Equal(t, 7.42, req.VelocityKms)
		assert.Equal(t, 31000.0, req.MissDistanceKm)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseSimulationRequest(RawEvent{Value: []byte("{invalid json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse simulation request")
	})
}

func TestSimulate(t *testing.T) {
	fixedTime := time.Date(2029, 4, 13, 21, 46, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	req := SimulationRequest{
		ObjectID:    "99942",
		Name:        "Apophis",
		ImpactInput: kmInput(0.35, 7.42, 31000),
	}
	result, err := NewSimulator(nil, NewSeededRand(5)).Simulate(req)
	require.NoError(t, err)

	_, err = uuid.Parse(result.ID)
	require.NoError(t, err)
	assert.Equal(t, "99942", result.ObjectID)
	assert.Equal(t, "Apophis", result.Name)
	assert.Equal(t, req.ImpactInput, result.Input)
	assert.Equal(t, fixedTime, result.ComputedAt)
	assert.Equal(t, SeverityContinental, result.Report.Environment.Severity)
}

func TestSetClock(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	assert.Equal(t, fixedTime, clock.Now())

	SetClock(nil)
	assert.True(t, time.Since(clock.Now()) < time.Second)
}
