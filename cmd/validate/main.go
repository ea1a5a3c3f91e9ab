// Command validate checks the simulation fixtures against the catalog and the
// physical invariants of the impact model. It re-runs every request through
// the domain package, so a model change that breaks a fixture shows up here.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -requests-json data/mock/simulation_requests.json \
//	  -results-json data/mock/simulation_results.json \
//	  -trials 1000
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/neo-impact-service/internal/adapter/catalog"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	requestsJSON := flag.String("requests-json", "", "path to the simulation request fixture")
	resultsJSON := flag.String("results-json", "", "optional path to the simulated result fixture")
	trials := flag.Int("trials", 1000, "random trials per request for range checks")
	seed := flag.Uint64("seed", 1, "seed for the random trials")
	flag.Parse()

	if *requestsJSON == "" || *trials < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*requestsJSON, *resultsJSON, *trials, *seed); code != 0 {
		os.Exit(code)
	}
}

func run(requestsPath, resultsPath string, trials int, seed uint64) int {
	fmt.Println("=== Impact Fixture Validation ===")
	fmt.Println()

	requests, err := loadJSON[domain.SimulationRequest](requestsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load requests: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCatalogParity(requests, catalog.SeedObjects()),
		validateImpactInvariants(requests),
		validateRandomRanges(requests, domain.NewSeededRand(seed), trials),
	}
	var results []domain.SimulationResult
	if resultsPath != "" {
		results, err = loadJSON[domain.SimulationResult](resultsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load results: %v\n", err)
			return 1
		}
		phases = append(phases, validateResults(results, requests))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d requests, %d results, %d trials each\n", len(requests), len(results), trials)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// ── Phases ──

// validateCatalogParity checks that every labelled request matches the
// closest approach of its catalog object.
func validateCatalogParity(requests []domain.SimulationRequest, objects []domain.Object) *phase {
	p := &phase{name: "Phase 1: Catalog Parity"}
	byID := make(map[string]domain.Object, len(objects))
	for _, o := range objects {
		byID[o.ID] = o
	}
	for i, req := range requests {
		if req.ObjectID == "" {
			continue
		}
		o, ok := byID[req.ObjectID]
		if !ok {
			p.errorf("request %d: object %q not in catalog", i, req.ObjectID)
			continue
		}
		if req.Name != o.Name {
			p.errorf("request %d (%s): name %q, catalog %q", i, req.ObjectID, req.Name, o.Name)
		}
		if want := o.ImpactInput(); req.ImpactInput != want {
			p.errorf("request %d (%s): input %+v, catalog %+v", i, req.ObjectID, req.ImpactInput, want)
		}
	}
	return p
}

func validateImpactInvariants(requests []domain.SimulationRequest) *phase {
	p := &phase{name: "Phase 2: Impact Invariants"}
	for i, req := range requests {
		pf := func(format string, args ...any) {
			p.errorf("request %d (%s): "+format, append([]any{i, req.ObjectID}, args...)...)
		}
		im, err := domain.ComputeImpactAnalysis(req.ImpactInput)
		if err != nil {
			pf("impact analysis: %v", err)
			continue
		}
		if req.DiameterKm() > 0 && (im.MassKg <= 0 || im.KineticEnergyJoules <= 0) {
			pf("mass %g and energy %g must be positive", im.MassKg, im.KineticEnergyJoules)
		}
		if !relEq(im.TNTEquivalentTons, im.KineticEnergyJoules/domain.TNTJoulesPerTon) {
			pf("tnt %g != energy/%g", im.TNTEquivalentTons, domain.TNTJoulesPerTon)
		}
		if im.ImpactProbability < 0 || im.ImpactProbability > 100 {
			pf("impact probability %g outside [0,100]", im.ImpactProbability)
		}
		if req.MissDistanceKm < domain.EarthRadiusKm && im.ImpactProbability != 100 {
			pf("miss distance %g inside Earth radius but probability %g", req.MissDistanceKm, im.ImpactProbability)
		}
		if im.RichterEquivalent > 10 {
			pf("richter %g above 10", im.RichterEquivalent)
		}
	}
	return p
}

// validateRandomRanges repeats the random stages and checks that the
// deterministic fields never move and the drawn fields stay plausible.
func validateRandomRanges(requests []domain.SimulationRequest, rng domain.Rand, trials int) *phase {
	p := &phase{name: "Phase 3: Random Stage Ranges"}
	for i, req := range requests {
		pf := func(format string, args ...any) {
			p.errorf("request %d (%s): "+format, append([]any{i, req.ObjectID}, args...)...)
		}
		severity, scenario := domain.ClassifySeverity(req.DiameterKm())
		for n := 0; n < trials; n++ {
			env, err := domain.ComputeEnvironmentalImpact(req.ImpactInput, rng)
			if err != nil {
				pf("environmental impact: %v", err)
				break
			}
			if env.Severity != severity || env.Scenario != scenario {
				pf("trial %d: %s/%s, want %s/%s", n, env.Severity, env.Scenario, severity, scenario)
				break
			}
			if env.DamageZones.GroundZeroRadiusKm != req.DiameterKm()*5 {
				pf("trial %d: ground zero %g != diameter*5", n, env.DamageZones.GroundZeroRadiusKm)
				break
			}
			if env.CasualtiesEstimate < 0 || env.EconomicDamageBillionUSD < 0 || env.RecoveryTimeYears < 0 {
				pf("trial %d: negative draw %+v", n, env)
				break
			}

			tr, err := domain.ComputeTrajectorySummary(req.ImpactInput, rng)
			if err != nil {
				pf("trajectory: %v", err)
				break
			}
			if tr.PerihelionAU > tr.AphelionAU || tr.OrbitalPeriodYears <= 0 {
				pf("trial %d: implausible orbit %+v", n, tr)
				break
			}
		}
	}
	return p
}

// validateResults checks a result fixture against its requests. The impact
// stage is deterministic, so it must match a fresh computation exactly.
func validateResults(results []domain.SimulationResult, requests []domain.SimulationRequest) *phase {
	p := &phase{name: "Phase 4: Result Fixture"}
	if len(results) != len(requests) {
		p.errorf("%d results for %d requests", len(results), len(requests))
		return p
	}
	for i := range results {
		r, req := &results[i], requests[i]
		pf := func(format string, args ...any) {
			p.errorf("result %d (%s): "+format, append([]any{i, r.ObjectID}, args...)...)
		}
		if r.ID == "" || r.ComputedAt.IsZero() {
			pf("missing id or computed_at")
		}
		if r.ObjectID != req.ObjectID || r.Input != req.ImpactInput {
			pf("does not match request %+v", req)
			continue
		}
		im, err := domain.ComputeImpactAnalysis(r.Input)
		if err != nil {
			pf("impact analysis: %v", err)
			continue
		}
		if !relEq(im.KineticEnergyJoules, r.Report.Impact.KineticEnergyJoules) ||
			!relEq(im.CraterDiameterM, r.Report.Impact.CraterDiameterM) ||
			!relEq(im.ImpactProbability, r.Report.Impact.ImpactProbability) {
			pf("impact analysis drifted from model")
		}
		if severity, _ := domain.ClassifySeverity(r.Input.DiameterKm()); r.Report.Environment.Severity != severity {
			pf("severity %s, want %s", r.Report.Environment.Severity, severity)
		}
	}
	return p
}

// ── Helpers ──

// relEq compares floats that went through a JSON round trip.
func relEq(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
