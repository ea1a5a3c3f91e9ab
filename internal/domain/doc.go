// Package domain computes the physical consequences of a hypothetical
// near-Earth object (NEO) impact.
//
// # Input
//
// Every stage consumes one [ImpactInput]: the object's diameter range (km),
// its velocity relative to Earth (km/s) and its miss distance (km). The
// effective diameter is the mean of the range. A miss distance of 0 marks a
// historical atmospheric entry such as Tunguska or Chelyabinsk. Bulk density
// is fixed at 2.6 g/cm³ for every object; composition is not modelled.
//
// # Stages
//
// The three stages are independent pure functions. None of them mutates its
// input or shares state with the others.
//
//	ComputeImpactAnalysis       mass, kinetic energy, TNT yield, crater,
//	                            blast radii, Richter-equivalent, probability
//	ComputeTrajectorySummary    illustrative orbital elements (random)
//	ComputeEnvironmentalImpact  severity tier, casualties, climate effects
//
// [Simulator] runs all three and merges them into a [Report].
//
// # Impact probability
//
//	miss < 6,371 km (Earth radius)   100 %
//	miss < 100,000 km                (R/miss)² · 100 · focusing, ≤ 99.9 %
//	otherwise                        (R/miss)² · 0.1, ≥ 0.0001 %
//
// The focusing factor is the ratio of the gravitationally focused to the
// geometric cross-section of Earth.
//
// # Severity tiers
//
// Classification is a total function of effective diameter. A diameter on a
// boundary belongs to the higher tier:
//
//	d < 0.01 km        minimal      atmospheric_breakup
//	0.01 ≤ d < 0.05    local        airburst_explosion
//	0.05 ≤ d < 0.15    regional     regional_devastation
//	0.15 ≤ d < 1.0     continental  continental_destruction
//	d ≥ 1.0            global       global_catastrophe
//
// Casualties, economic damage and recovery time are uniform integer draws
// within tier-specific ranges. Tsunami risk uses its own thresholds
// (>0.1 km extreme, >0.05 km high, otherwise moderate).
//
// # Randomness
//
// Stochastic stages take a [Rand]. Passing nil uses the process-wide
// math/rand/v2 generator; [NewSeededRand] gives reproducible draws.
package domain
