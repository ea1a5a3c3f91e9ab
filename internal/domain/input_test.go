package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactInputDiameterKm(t *testing.T) {
	in := ImpactInput{DiameterMinKm: 0.3, DiameterMaxKm: 0.4}
	assert.InDelta(t, 0.35, in.DiameterKm(), 1e-12)
}

func TestImpactInputValidate(t *testing.T) {
	valid := ImpactInput{DiameterMinKm: 0.3, DiameterMaxKm: 0.4, VelocityKms: 7.42, MissDistanceKm: 31000}

	tests := []struct {
		name    string
		mutate  func(*ImpactInput)
		wantErr string
	}{
		{"valid", func(*ImpactInput) {}, ""},
		{"zero miss distance", func(in *ImpactInput) { in.MissDistanceKm = 0 }, ""},
		{"zero diameter", func(in *ImpactInput) { in.DiameterMinKm, in.DiameterMaxKm = 0, 0 }, ""},
		{"zero velocity", func(in *ImpactInput) { in.VelocityKms = 0 }, "velocity_kms must be > 0"},
		{"negative velocity", func(in *ImpactInput) { in.VelocityKms = -3 }, "velocity_kms must be > 0"},
		{"negative min diameter", func(in *ImpactInput) { in.DiameterMinKm = -0.1 }, "diameter_min must be >= 0"},
		{"negative max diameter", func(in *ImpactInput) { in.DiameterMinKm, in.DiameterMaxKm = -0.2, -0.1 }, "diameter_min must be >= 0"},
		{"min above max", func(in *ImpactInput) { in.DiameterMinKm = 0.5 }, "exceeds diameter_max"},
		{"negative miss distance", func(in *ImpactInput) { in.MissDistanceKm = -1 }, "miss_distance_km must be >= 0"},
		{"NaN velocity", func(in *ImpactInput) { in.VelocityKms = math.NaN() }, "velocity_kms must be a finite number"},
		{"infinite diameter", func(in *ImpactInput) { in.DiameterMaxKm = math.Inf(1) }, "diameter_max must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStagesRejectInvalidInput(t *testing.T) {
	in := ImpactInput{DiameterMinKm: 0.5, DiameterMaxKm: 0.4, VelocityKms: 10}

	_, err := ComputeImpactAnalysis(in)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ComputeTrajectorySummary(in, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ComputeEnvironmentalImpact(in, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
