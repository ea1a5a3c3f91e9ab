package domain

import "math/rand/v2"

// Rand is the random source consumed by the stochastic stages (trajectory
// elements, casualty and economic draws, recovery time). A seeded
// *rand.Rand satisfies it; tests use one for reproducible draws.
type Rand interface {
	Float64() float64
	Int64N(n int64) int64
}

// globalRand delegates to the process-wide generator, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64     { return rand.Float64() }
func (globalRand) Int64N(n int64) int64 { return rand.Int64N(n) }

// NewSeededRand returns a deterministic source for reproducible runs.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// defaultRand backs stages called with a nil Rand.
var defaultRand Rand = globalRand{}

// SetRand swaps the source used when a stage is given a nil Rand. Pass nil
// to restore the process-wide generator.
func SetRand(r Rand) {
	if r == nil {
		defaultRand = globalRand{}
		return
	}
	defaultRand = r
}

func resolveRand(r Rand) Rand {
	if r == nil {
		return defaultRand
	}
	return r
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// randInt draws an integer from the closed range [lo, hi].
func randInt(r Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Int64N(hi-lo+1)
}
