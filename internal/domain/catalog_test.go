package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectImpactInput(t *testing.T) {
	date := time.Date(2029, 4, 13, 0, 0, 0, 0, time.UTC)

	t.Run("uses closest approach", func(t *testing.T) {
		obj := Object{
			ID:            "99942",
			DiameterMinKm: 0.325,
			DiameterMaxKm: 0.375,
			Approaches: []CloseApproach{
				NewCloseApproach("99942", date.AddDate(-8, 0, 0), 5.9, 16900000),
				NewCloseApproach("99942", date, 7.42, 31000),
				NewCloseApproach("99942", date.AddDate(7, 0, 0), 6.1, 7000000),
			},
		}
		in := obj.ImpactInput()
		assert.Equal(t, 7.42, in.VelocityKms)
		assert.Equal(t, 31000.0, in.MissDistanceKm)
		assert.Equal(t, 0.325, in.DiameterMinKm)
		assert.Equal(t, 0.375, in.DiameterMaxKm)
	})

	t.Run("no approaches", func(t *testing.T) {
		in := Object{DiameterMinKm: 1, DiameterMaxKm: 2}.ImpactInput()
		assert.Equal(t, 20.0, in.VelocityKms)
		assert.Equal(t, 5000000.0, in.MissDistanceKm)
		assert.NoError(t, in.Validate())
	})
}

func TestNewCloseApproach(t *testing.T) {
	a := NewCloseApproach("101955", time.Date(2135, 9, 25, 0, 0, 0, 0, time.UTC), 6.2, AstronomicalUnitKm/2)
	assert.InDelta(t, 22320.0, a.VelocityKmh, 1e-9)
	assert.InDelta(t, 0.5, a.MissDistanceAU, 1e-12)
	assert.Equal(t, "Earth", a.OrbitingBody)
}

func TestDefaultObject(t *testing.T) {
	obj := DefaultObject("12345")
	assert.Equal(t, "Asteroid 12345", obj.Name)
	assert.Equal(t, "Unknown asteroid object", obj.Description)
	assert.False(t, obj.IsHazardous)

	in := obj.ImpactInput()
	assert.Equal(t, ImpactInput{DiameterMinKm: 0.5, DiameterMaxKm: 1.0, VelocityKms: 20, MissDistanceKm: 5000000}, in)
}

func TestHazardSummary(t *testing.T) {
	assert.Contains(t, Object{Name: "Apophis", IsHazardous: true}.HazardSummary(), "potentially hazardous")
	assert.Equal(t, "Eros is a near-Earth asteroid that poses no immediate threat to Earth.", Object{Name: "Eros"}.HazardSummary())
}
