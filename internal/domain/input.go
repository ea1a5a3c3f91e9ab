package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned by every stage when the ImpactInput is not
// physically meaningful. Callers decide on fallbacks; the stages never
// substitute defaults.
var ErrInvalidInput = errors.New("invalid impact input")

// ImpactInput describes one object at encounter. It is the only input of the
// three computation stages.
type ImpactInput struct {
	DiameterMinKm  float64 `json:"diameter_min"`
	DiameterMaxKm  float64 `json:"diameter_max"`
	VelocityKms    float64 `json:"velocity_kms"`
	MissDistanceKm float64 `json:"miss_distance_km"` // 0 for historical entry events
}

// DiameterKm returns the effective diameter: the mean of the reported range.
func (in ImpactInput) DiameterKm() float64 {
	return (in.DiameterMinKm + in.DiameterMaxKm) / 2
}

// Validate reports the first constraint the input violates, wrapped in
// ErrInvalidInput.
func (in ImpactInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"diameter_min", in.DiameterMinKm},
		{"diameter_max", in.DiameterMaxKm},
		{"velocity_kms", in.VelocityKms},
		{"miss_distance_km", in.MissDistanceKm},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
	}

	switch {
	case in.VelocityKms <= 0:
		return fmt.Errorf("%w: velocity_kms must be > 0, got %g", ErrInvalidInput, in.VelocityKms)
	case in.DiameterMinKm < 0:
		return fmt.Errorf("%w: diameter_min must be >= 0, got %g", ErrInvalidInput, in.DiameterMinKm)
	case in.DiameterMaxKm < 0:
		return fmt.Errorf("%w: diameter_max must be >= 0, got %g", ErrInvalidInput, in.DiameterMaxKm)
	case in.DiameterMinKm > in.DiameterMaxKm:
		return fmt.Errorf("%w: diameter_min %g exceeds diameter_max %g", ErrInvalidInput, in.DiameterMinKm, in.DiameterMaxKm)
	case in.MissDistanceKm < 0:
		return fmt.Errorf("%w: miss_distance_km must be >= 0, got %g", ErrInvalidInput, in.MissDistanceKm)
	}
	return nil
}
