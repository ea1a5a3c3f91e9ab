// Command genmock renders simulation request fixtures from the built-in
// object catalog, and optionally the simulated results for those requests.
// Results use a fixed clock and seed so reruns produce identical files.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -requests-out data/mock/simulation_requests.json \
//	  -results-out data/mock/simulation_results.json \
//	  -ids 99942,101955,433,1,TUNGUSKA,CHELYABINSK,65803
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/neo-impact-service/internal/adapter/catalog"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

const defaultIDs = "99942,101955,433,1,TUNGUSKA,CHELYABINSK,65803"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	requestsOut := flag.String("requests-out", "", "output path for the simulation request fixture")
	resultsOut := flag.String("results-out", "", "optional output path for simulated results")
	ids := flag.String("ids", defaultIDs, "comma-separated catalog IDs to include (empty for all)")
	seed := flag.Uint64("seed", 2029, "seed for the random stages of simulated results")
	flag.Parse()

	if *requestsOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -requests-out")
	}

	requests, err := buildRequests(catalog.SeedObjects(), *ids)
	if err != nil {
		return err
	}
	if err := writeJSON(*requestsOut, requests); err != nil {
		return fmt.Errorf("writing request fixture: %w", err)
	}
	log.Printf("wrote %d requests: %s", len(requests), *requestsOut)

	if *resultsOut == "" {
		return nil
	}

	// Set a fixed clock for reproducible ComputedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2029, time.April, 13, 21, 46, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	sim := domain.NewSimulator(nil, domain.NewSeededRand(*seed))
	results := make([]domain.SimulationResult, 0, len(requests))
	for _, req := range requests {
		res, err := sim.Simulate(req)
		if err != nil {
			return fmt.Errorf("simulate %s: %w", req.ObjectID, err)
		}
		results = append(results, res)
	}
	if err := writeJSON(*resultsOut, results); err != nil {
		return fmt.Errorf("writing result fixture: %w", err)
	}
	log.Printf("wrote %d results: %s", len(results), *resultsOut)

	printStats(results)
	return nil
}

// buildRequests turns catalog objects into requests, in the order of ids.
func buildRequests(objects []domain.Object, ids string) ([]domain.SimulationRequest, error) {
	byID := make(map[string]domain.Object, len(objects))
	order := make([]string, 0, len(objects))
	for _, o := range objects {
		byID[o.ID] = o
		order = append(order, o.ID)
	}
	if ids != "" {
		order = strings.Split(ids, ",")
	}

	requests := make([]domain.SimulationRequest, 0, len(order))
	for _, id := range order {
		o, ok := byID[strings.TrimSpace(id)]
		if !ok {
			return nil, fmt.Errorf("unknown catalog id %q", id)
		}
		requests = append(requests, domain.SimulationRequest{
			ObjectID:    o.ID,
			Name:        o.Name,
			ImpactInput: o.ImpactInput(),
		})
	}
	return requests, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(results []domain.SimulationResult) {
	counts := map[domain.Severity]int{}
	for i := range results {
		counts[results[i].Report.Environment.Severity]++
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(results))
	fmt.Printf("By severity: minimal=%d, local=%d, regional=%d, continental=%d, global=%d\n",
		counts[domain.SeverityMinimal], counts[domain.SeverityLocal], counts[domain.SeverityRegional],
		counts[domain.SeverityContinental], counts[domain.SeverityGlobal])

	sorted := append([]domain.SimulationResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Report.Impact.KineticEnergyJoules > sorted[j].Report.Impact.KineticEnergyJoules
	})
	fmt.Println("\nBy energy:")
	for _, r := range sorted {
		fmt.Printf("  %-20s %-12s %.3e J  p=%.4f%%\n", r.Name, r.Report.Environment.Severity,
			r.Report.Impact.KineticEnergyJoules, r.Report.Impact.ImpactProbability)
	}
}
