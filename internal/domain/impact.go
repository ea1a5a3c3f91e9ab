package domain

import "math"

// ImpactAnalysisResult is the output of the energy and crater model.
type ImpactAnalysisResult struct {
	MassKg                       float64 `json:"mass_kg"`
	KineticEnergyJoules          float64 `json:"kinetic_energy_joules"`
	AtmosphericEntryEnergyJoules float64 `json:"atmospheric_entry_energy_joules"`
	TNTEquivalentTons            float64 `json:"tnt_equivalent_tons"`
	CraterDiameterM              float64 `json:"crater_diameter_m"`
	CraterDepthM                 float64 `json:"crater_depth_m"`
	ImpactProbability            float64 `json:"impact_probability"` // percent, 0–100
	FireballRadiusKm             float64 `json:"fireball_radius_km"`
	RadiationRadiusKm            float64 `json:"radiation_radius_km"`
	OverpressureRadiusKm         float64 `json:"overpressure_radius_km"`
	ThermalRadiusKm              float64 `json:"thermal_radius_km"`
	RichterEquivalent            float64 `json:"richter_equivalent"`
	AirburstAltitudeKm           float64 `json:"airburst_altitude_km"`
	GravitationalEnhancement     float64 `json:"gravitational_enhancement"`
}

// ComputeImpactAnalysis converts an object's size, velocity and miss distance
// into released energy, crater geometry, blast radii, seismic magnitude and
// impact probability. It is deterministic.
func ComputeImpactAnalysis(in ImpactInput) (ImpactAnalysisResult, error) {
	if err := in.Validate(); err != nil {
		return ImpactAnalysisResult{}, err
	}

	diameterKm := in.DiameterKm()
	mass := massKg(diameterKm)
	energy := kineticEnergyJoules(mass, in.VelocityKms)
	tnt := energy / TNTJoulesPerTon
	crater := craterDiameterM(diameterKm, in.VelocityKms)
	enhancement := gravitationalEnhancement(in.VelocityKms)

	return ImpactAnalysisResult{
		MassKg:                       mass,
		KineticEnergyJoules:          energy,
		AtmosphericEntryEnergyJoules: energy * AtmosphericSurvivalFraction,
		TNTEquivalentTons:            tnt,
		CraterDiameterM:              crater,
		CraterDepthM:                 crater / craterDepthToDiameter,
		ImpactProbability:            impactProbability(in.MissDistanceKm, enhancement),
		FireballRadiusKm:             fireballCoefficient * math.Pow(tnt, fireballExponent),
		RadiationRadiusKm:            radiationCoefficient * math.Pow(tnt, radiationExponent),
		OverpressureRadiusKm:         overpressureCoefficient * math.Pow(tnt, overpressureExponent),
		ThermalRadiusKm:              thermalCoefficient * math.Pow(tnt, thermalExponent),
		RichterEquivalent:            richterEquivalent(tnt),
		AirburstAltitudeKm:           math.Max(0, airburstCeilingKm-diameterKm),
		GravitationalEnhancement:     enhancement,
	}, nil
}

// massKg returns the mass of a sphere of the given diameter at bulk density.
func massKg(diameterKm float64) float64 {
	radiusM := diameterKm * 1000 / 2
	volume := 4.0 / 3.0 * math.Pi * radiusM * radiusM * radiusM
	return volume * BulkDensityKgM3
}

func kineticEnergyJoules(massKg, velocityKms float64) float64 {
	v := velocityKms * 1000
	return 0.5 * massKg * v * v
}

// craterDiameterM applies the empirical crater scaling law. The density ratio
// takes the bulk density in g/cm³ against a kg/m³ reference, matching the
// published dashboard figures.
func craterDiameterM(diameterKm, velocityKms float64) float64 {
	return craterCoefficient *
		math.Pow(diameterKm*1000, craterDiameterExponent) *
		math.Pow(velocityKms, craterVelocityExponent) *
		math.Pow(BulkDensityGCM3/craterReferenceDensity, craterDensityExponent)
}

// gravitationalEnhancement is the ratio of Earth's gravitationally focused
// cross-section to its geometric cross-section for an object approaching at
// velocityKms. The focusing term 2GM/v² is in meters and is added to the
// radius in kilometers, as the dashboard model does, so the ratio is large:
// about 5e6 at 7.42 km/s and still about 270 at 90 km/s. Any approach between
// Earth's radius and 100,000 km therefore saturates at 99.9 percent for
// catalog velocities. Always >= 1.
func gravitationalEnhancement(velocityKms float64) float64 {
	v := velocityKms * 1000
	focused := EarthRadiusKm + 2*GravitationalConstant*EarthMassKg/(v*v)
	return (math.Pi * focused * focused) / (math.Pi * EarthRadiusKm * EarthRadiusKm)
}

// impactProbability returns the collision probability in percent.
//   - inside Earth's radius: certain (100)
//   - within 100,000 km: geometric ratio scaled by gravitational focusing, capped at 99.9
//   - beyond: a tenth of the geometric ratio, floored at 0.0001
func impactProbability(missDistanceKm, enhancement float64) float64 {
	switch {
	case missDistanceKm < EarthRadiusKm:
		return 100.0
	case missDistanceKm < closeApproachLimitKm:
		ratio := EarthRadiusKm / missDistanceKm
		return math.Min(maxCloseProbability, ratio*ratio*100*enhancement)
	default:
		ratio := EarthRadiusKm / missDistanceKm
		return math.Max(minDistantProbability, ratio*ratio*distantProbabilityScale)
	}
}

func richterEquivalent(tntTons float64) float64 {
	return math.Min(richterCap, richterBase+math.Log10(math.Max(1, tntTons))/2)
}
