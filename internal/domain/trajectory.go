package domain

import "math"

// Bounds of the illustrative orbital elements.
const (
	minSemiMajorAxisAU = 1.0
	maxSemiMajorAxisAU = 3.5
	minEccentricity    = 0.1
	maxEccentricity    = 0.8
	minInclinationDeg  = 0.0
	maxInclinationDeg  = 30.0
)

// TrajectorySummary is an illustrative orbit sketch for display purposes.
//
// No ephemeris is available, so the semi-major axis, eccentricity and
// inclination are uniform draws within fixed bounds rather than fitted
// elements. Only the approach angle is derived from the input. None of the
// values are physically authoritative.
type TrajectorySummary struct {
	SemiMajorAxisAU     float64 `json:"semi_major_axis_au"`
	Eccentricity        float64 `json:"eccentricity"`
	InclinationDeg      float64 `json:"inclination_deg"`
	ApproachAngleDeg    float64 `json:"approach_angle_deg"`
	ApproachVelocityKms float64 `json:"approach_velocity_kms"`
	OrbitalPeriodYears  float64 `json:"orbital_period_years"`
	PerihelionAU        float64 `json:"perihelion_distance_au"`
	AphelionAU          float64 `json:"aphelion_distance_au"`
}

// ComputeTrajectorySummary draws orbital elements from rng (nil uses the
// process-wide source) and derives period and apsides from them: period by
// Kepler's third law in years, perihelion/aphelion as a(1∓e).
func ComputeTrajectorySummary(in ImpactInput, rng Rand) (TrajectorySummary, error) {
	if err := in.Validate(); err != nil {
		return TrajectorySummary{}, err
	}
	rng = resolveRand(rng)

	a := uniform(rng, minSemiMajorAxisAU, maxSemiMajorAxisAU)
	e := uniform(rng, minEccentricity, maxEccentricity)
	inc := uniform(rng, minInclinationDeg, maxInclinationDeg)

	return TrajectorySummary{
		SemiMajorAxisAU:     a,
		Eccentricity:        e,
		InclinationDeg:      inc,
		ApproachAngleDeg:    approachAngleDeg(in.MissDistanceKm),
		ApproachVelocityKms: in.VelocityKms,
		OrbitalPeriodYears:  math.Pow(a, 1.5),
		PerihelionAU:        a * (1 - e),
		AphelionAU:          a * (1 + e),
	}, nil
}

// approachAngleDeg is the angle subtended by the miss distance at one AU.
func approachAngleDeg(missDistanceKm float64) float64 {
	return math.Atan2(missDistanceKm, AstronomicalUnitKm) * 180 / math.Pi
}
