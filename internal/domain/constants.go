package domain

// Physical constants and empirical coefficients of the impact model.
// The coefficients are fixed values from the scaling laws in use; they are
// not tuning knobs.
const (
	// BulkDensityGCM3 is the assumed bulk density of every object (g/cm³).
	BulkDensityGCM3 = 2.6
	// BulkDensityKgM3 is BulkDensityGCM3 expressed in kg/m³.
	BulkDensityKgM3 = BulkDensityGCM3 * 1000

	// TNTJoulesPerTon is the energy released by one metric ton of TNT.
	TNTJoulesPerTon = 4.184e9

	EarthRadiusKm         = 6371.0
	EarthMassKg           = 5.97e24
	EarthSurfaceAreaKm2   = 510000000.0
	GravitationalConstant = 6.67e-11

	// AstronomicalUnitKm is the mean Earth–Sun distance.
	AstronomicalUnitKm = 149597870.7

	// OceanImpactProbability is the fraction of Earth's surface covered by ocean.
	OceanImpactProbability = 0.71

	// AtmosphericSurvivalFraction is the share of kinetic energy assumed to
	// survive atmospheric entry.
	AtmosphericSurvivalFraction = 0.7
)

// Crater scaling: 1.8 · D^0.78 · v^0.44 · (ρ/2650)^0.33.
const (
	craterCoefficient       = 1.8
	craterDiameterExponent  = 0.78
	craterVelocityExponent  = 0.44
	craterDensityExponent   = 0.33
	craterReferenceDensity  = 2650.0
	craterDepthToDiameter   = 5.0
	airburstCeilingKm       = 10.0
	closeApproachLimitKm    = 100000.0
	maxCloseProbability     = 99.9
	minDistantProbability   = 0.0001
	distantProbabilityScale = 0.1
)

// Blast radii are power laws of the TNT yield in tons: coefficient · E^exponent (km).
const (
	fireballCoefficient     = 0.28
	fireballExponent        = 0.33
	radiationCoefficient    = 1.24
	radiationExponent       = 0.38
	overpressureCoefficient = 2.2
	overpressureExponent    = 0.33
	thermalCoefficient      = 3.5
	thermalExponent         = 0.41
)

// Seismic magnitude: 4 + log10(E)/2, capped.
const (
	richterBase = 4.0
	richterCap  = 10.0
)
