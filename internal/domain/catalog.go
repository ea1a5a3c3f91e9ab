package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrObjectNotFound is returned by catalogs for unknown object IDs.
var ErrObjectNotFound = errors.New("object not found")

// Object is a catalogued near-Earth object.
type Object struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Kind              string          `json:"type"` // Asteroid, Comet, Dwarf Planet, Meteor, ...
	DiameterMinKm     float64         `json:"diameter_min"`
	DiameterMaxKm     float64         `json:"diameter_max"`
	IsHazardous       bool            `json:"is_hazardous"`
	AbsoluteMagnitude float64         `json:"absolute_magnitude"`
	Description       string          `json:"description"`
	Approaches        []CloseApproach `json:"close_approaches,omitempty"`
}

// CloseApproach is one encounter of an object with a body.
type CloseApproach struct {
	ObjectID       string    `json:"object_id"`
	ApproachDate   time.Time `json:"approach_date"`
	VelocityKms    float64   `json:"velocity_kms"`
	VelocityKmh    float64   `json:"velocity_kmh"`
	MissDistanceKm float64   `json:"miss_distance_km"`
	MissDistanceAU float64   `json:"miss_distance_au"`
	OrbitingBody   string    `json:"orbiting_body"`
}

// Fallback encounter used when an object has no recorded approach.
const (
	defaultVelocityKms    = 20.0
	defaultMissDistanceKm = 5000000.0
)

// NewCloseApproach fills the derived unit fields (km/h, AU) of an approach.
func NewCloseApproach(objectID string, date time.Time, velocityKms, missDistanceKm float64) CloseApproach {
	return CloseApproach{
		ObjectID:       objectID,
		ApproachDate:   date,
		VelocityKms:    velocityKms,
		VelocityKmh:    velocityKms * 3600,
		MissDistanceKm: missDistanceKm,
		MissDistanceAU: missDistanceKm / AstronomicalUnitKm,
		OrbitingBody:   "Earth",
	}
}

// ClosestApproach returns the approach with the smallest miss distance.
func (o Object) ClosestApproach() (CloseApproach, bool) {
	if len(o.Approaches) == 0 {
		return CloseApproach{}, false
	}
	best := o.Approaches[0]
	for _, a := range o.Approaches[1:] {
		if a.MissDistanceKm < best.MissDistanceKm {
			best = a
		}
	}
	return best, true
}

// ImpactInput assembles the simulation input from the object's size and its
// closest approach. Objects without approaches use a 20 km/s encounter at
// 5,000,000 km.
func (o Object) ImpactInput() ImpactInput {
	in := ImpactInput{
		DiameterMinKm:  o.DiameterMinKm,
		DiameterMaxKm:  o.DiameterMaxKm,
		VelocityKms:    defaultVelocityKms,
		MissDistanceKm: defaultMissDistanceKm,
	}
	if a, ok := o.ClosestApproach(); ok {
		in.VelocityKms = a.VelocityKms
		in.MissDistanceKm = a.MissDistanceKm
	}
	return in
}

// HazardSummary is a one-line description of the object's hazard status.
func (o Object) HazardSummary() string {
	if o.IsHazardous {
		return fmt.Sprintf("%s is a potentially hazardous near-Earth asteroid that requires monitoring.", o.Name)
	}
	return fmt.Sprintf("%s is a near-Earth asteroid that poses no immediate threat to Earth.", o.Name)
}

// DefaultObject is the stand-in served for IDs missing from the catalog.
func DefaultObject(id string) Object {
	return Object{
		ID:            id,
		Name:          "Asteroid " + id,
		Kind:          "Asteroid",
		DiameterMinKm: 0.5,
		DiameterMaxKm: 1.0,
		Description:   "Unknown asteroid object",
		Approaches: []CloseApproach{
			NewCloseApproach(id, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), defaultVelocityKms, defaultMissDistanceKm),
		},
	}
}
