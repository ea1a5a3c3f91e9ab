package domain

import "math"

// Severity is the environmental severity tier of an impact.
type Severity string

const (
	SeverityMinimal     Severity = "minimal"
	SeverityLocal       Severity = "local"
	SeverityRegional    Severity = "regional"
	SeverityContinental Severity = "continental"
	SeverityGlobal      Severity = "global"
)

// Scenario names the impact outcome associated with a severity tier.
type Scenario string

const (
	ScenarioAtmosphericBreakup     Scenario = "atmospheric_breakup"
	ScenarioAirburstExplosion      Scenario = "airburst_explosion"
	ScenarioRegionalDevastation    Scenario = "regional_devastation"
	ScenarioContinentalDestruction Scenario = "continental_destruction"
	ScenarioGlobalCatastrophe      Scenario = "global_catastrophe"
)

// TsunamiRisk grades the tsunami threat of an ocean impact.
type TsunamiRisk string

const (
	TsunamiModerate TsunamiRisk = "moderate"
	TsunamiHigh     TsunamiRisk = "high"
	TsunamiExtreme  TsunamiRisk = "extreme"
)

// Ceilings of the closed-form environmental effects.
const (
	maxDustInjectionMt      = 10000.0
	maxTemperatureDropC     = 15.0
	maxOzoneDepletionPct    = 50.0
	maxAcidRainYears        = 10.0
	maxNuclearWinterYears   = 5.0
	maxExtremeTsunamiHeight = 300.0
	maxHighTsunamiHeight    = 100.0
	maxModerateTsunami      = 50.0
)

// Damage-zone radii as multiples of the effective diameter (km per km).
const (
	groundZeroMultiple     = 5.0
	severeDamageMultiple   = 20.0
	moderateDamageMultiple = 50.0
	lightDamageMultiple    = 100.0
)

// bounds is a closed integer range for a random draw.
type bounds struct{ lo, hi int64 }

// tier holds everything that is selected by the diameter band.
type tier struct {
	upperKm     float64 // exclusive; +Inf for the last band
	severity    Severity
	scenario    Scenario
	description string
	casualties  bounds
	economic    bounds // billions of USD
	recovery    bounds // years
}

// tiers are ordered by upper bound. A diameter on a boundary belongs to the
// higher band.
var tiers = [...]tier{
	{
		upperKm:     0.01,
		severity:    SeverityMinimal,
		scenario:    ScenarioAtmosphericBreakup,
		description: "Complete atmospheric breakup, bright fireball, possible meteorite fragments",
		recovery:    bounds{0, 1},
	},
	{
		upperKm:     0.05,
		severity:    SeverityLocal,
		scenario:    ScenarioAirburstExplosion,
		description: "Airburst explosion, broken windows, minor injuries in populated areas (Chelyabinsk-type event)",
		casualties:  bounds{0, 1500},
		economic:    bounds{10, 100},
		recovery:    bounds{1, 10},
	},
	{
		upperKm:     0.15,
		severity:    SeverityRegional,
		scenario:    ScenarioRegionalDevastation,
		description: "Significant regional damage, forest flattening, major city damage if urban impact (Tunguska-type event)",
		casualties:  bounds{1000, 100000},
		economic:    bounds{100, 10000},
		recovery:    bounds{10, 100},
	},
	{
		upperKm:     1.0,
		severity:    SeverityContinental,
		scenario:    ScenarioContinentalDestruction,
		description: "Continental-scale destruction, climate effects, mass casualties, civilization disruption",
		casualties:  bounds{100000, 50000000},
		economic:    bounds{10000, 1000000},
		recovery:    bounds{100, 1000},
	},
	{
		upperKm:     math.Inf(1),
		severity:    SeverityGlobal,
		scenario:    ScenarioGlobalCatastrophe,
		description: "Global catastrophe, mass extinction event, climate change, civilization threat (K-Pg type event)",
		casualties:  bounds{1000000000, 7000000000},
		economic:    bounds{1000000, 100000000},
		recovery:    bounds{1000, 10000},
	},
}

// DamageZones are concentric damage radii around ground zero (km).
type DamageZones struct {
	GroundZeroRadiusKm     float64 `json:"ground_zero_radius"`
	SevereDamageRadiusKm   float64 `json:"severe_damage_radius"`
	ModerateDamageRadiusKm float64 `json:"moderate_damage_radius"`
	LightDamageRadiusKm    float64 `json:"light_damage_radius"`
}

// EnvironmentalImpactResult is the output of the environmental classifier.
// Casualties, economic damage and recovery time are random draws within the
// tier's range; everything else is deterministic.
type EnvironmentalImpactResult struct {
	Scenario                   Scenario    `json:"scenario"`
	Severity                   Severity    `json:"severity_level"`
	Description                string      `json:"description"`
	DustInjectionMillionTons   float64     `json:"dust_injection_million_tons"`
	TemperatureDropCelsius     float64     `json:"temperature_drop_celsius"`
	AffectedAreaKm2            float64     `json:"affected_area_km2"`
	TsunamiRisk                TsunamiRisk `json:"tsunami_risk"`
	TsunamiHeightM             float64     `json:"tsunami_height_m"`
	RecoveryTimeYears          int64       `json:"recovery_time_years"`
	CasualtiesEstimate         int64       `json:"casualties_estimate"`
	EconomicDamageBillionUSD   int64       `json:"economic_damage_billion_usd"`
	OzoneDepletionPercent      float64     `json:"ozone_depletion_percent"`
	AcidRainDurationYears      float64     `json:"acid_rain_duration_years"`
	NuclearWinterDurationYears float64     `json:"nuclear_winter_duration_years"`
	OceanImpactProbability     float64     `json:"ocean_impact_probability"`
	DamageZones                DamageZones `json:"impact_zones"`
	KineticEnergyJoules        float64     `json:"kinetic_energy_joules"`
}

// ClassifySeverity maps an effective diameter (km) to its severity tier and
// scenario. Bands: <0.01 minimal, <0.05 local, <0.15 regional,
// <1.0 continental, otherwise global.
func ClassifySeverity(diameterKm float64) (Severity, Scenario) {
	t := selectTier(diameterKm)
	return t.severity, t.scenario
}

func selectTier(diameterKm float64) tier {
	for _, t := range tiers {
		if diameterKm < t.upperKm {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// ComputeEnvironmentalImpact classifies the object into a severity tier and
// derives casualties, economic damage, tsunami risk, climate effects and
// recovery time. Random draws come from rng (nil uses the process-wide
// source).
func ComputeEnvironmentalImpact(in ImpactInput, rng Rand) (EnvironmentalImpactResult, error) {
	if err := in.Validate(); err != nil {
		return EnvironmentalImpactResult{}, err
	}
	rng = resolveRand(rng)

	d := in.DiameterKm()
	v := in.VelocityKms
	t := selectTier(d)
	casualties := randInt(rng, t.casualties.lo, t.casualties.hi)
	economic := randInt(rng, t.economic.lo, t.economic.hi)
	recovery := randInt(rng, t.recovery.lo, t.recovery.hi)
	risk, height := tsunami(d, v)
	spread := d * 1000 * v * 0.5

	return EnvironmentalImpactResult{
		Scenario:                   t.scenario,
		Severity:                   t.severity,
		Description:                t.description,
		DustInjectionMillionTons:   math.Min(maxDustInjectionMt, d*d*v*50),
		TemperatureDropCelsius:     math.Min(maxTemperatureDropC, d*v*0.1),
		AffectedAreaKm2:            math.Min(EarthSurfaceAreaKm2, math.Pi*spread*spread),
		TsunamiRisk:                risk,
		TsunamiHeightM:             height,
		RecoveryTimeYears:          recovery,
		CasualtiesEstimate:         casualties,
		EconomicDamageBillionUSD:   economic,
		OzoneDepletionPercent:      math.Min(maxOzoneDepletionPct, d*10),
		AcidRainDurationYears:      math.Min(maxAcidRainYears, d*20),
		NuclearWinterDurationYears: math.Min(maxNuclearWinterYears, d*2),
		OceanImpactProbability:     OceanImpactProbability,
		DamageZones:                damageZones(d),
		KineticEnergyJoules:        kineticEnergyJoules(massKg(d), v),
	}, nil
}

// tsunami grades the wave on its own thresholds, independent of the severity
// tier: >0.1 km extreme, >0.05 km high, otherwise moderate.
func tsunami(diameterKm, velocityKms float64) (TsunamiRisk, float64) {
	switch {
	case diameterKm > 0.1:
		return TsunamiExtreme, math.Min(maxExtremeTsunamiHeight, diameterKm*velocityKms*10)
	case diameterKm > 0.05:
		return TsunamiHigh, math.Min(maxHighTsunamiHeight, diameterKm*velocityKms*5)
	default:
		return TsunamiModerate, math.Min(maxModerateTsunami, diameterKm*velocityKms*2)
	}
}

func damageZones(diameterKm float64) DamageZones {
	return DamageZones{
		GroundZeroRadiusKm:     diameterKm * groundZeroMultiple,
		SevereDamageRadiusKm:   diameterKm * severeDamageMultiple,
		ModerateDamageRadiusKm: diameterKm * moderateDamageMultiple,
		LightDamageRadiusKm:    diameterKm * lightDamageMultiple,
	}
}
