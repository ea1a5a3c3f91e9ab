package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Simulate one impact scenario",
	Long: `Simulate one impact scenario and print the merged report.

The scenario is read from --file (yaml, json or toml) and/or flags; flags
override file values. Keys: object_id, name, diameter_min, diameter_max,
velocity_kms, miss_distance_km, seed.

Examples:
  impactctl analyze --diameter-min 0.017 --diameter-max 0.02 --velocity 19.16
  impactctl analyze --file apophis.yaml --format text`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := loadScenario(cmd)
		if err != nil {
			return err
		}

		var rng domain.Rand
		if sc.seeded {
			rng = domain.NewSeededRand(sc.seed)
		}
		result, err := domain.NewSimulator(nil, rng).Simulate(sc.request)
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		logger().Debug("simulation complete", "id", result.ID, "severity", result.Report.Environment.Severity)
		return render(cmd.OutOrStdout(), result)
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.String("file", "", "Scenario file (yaml, json, toml)")
	f.String("object-id", "", "Object ID label")
	f.String("name", "", "Object name label")
	f.Float64("diameter-min", 0, "Minimum diameter in km")
	f.Float64("diameter-max", 0, "Maximum diameter in km")
	f.Float64("velocity", 0, "Relative velocity in km/s")
	f.Float64("miss-distance", 0, "Miss distance in km (0 for a direct hit)")
	f.Uint64("seed", 0, "Seed for reproducible random draws")

	rootCmd.AddCommand(analyzeCmd)
}

// scenarioFlags maps viper keys to analyze flags.
var scenarioFlags = map[string]string{
	"object_id":        "object-id",
	"name":             "name",
	"diameter_min":     "diameter-min",
	"diameter_max":     "diameter-max",
	"velocity_kms":     "velocity",
	"miss_distance_km": "miss-distance",
	"seed":             "seed",
}

type scenario struct {
	request domain.SimulationRequest
	seed    uint64
	seeded  bool
}

// loadScenario merges the optional scenario file with explicitly set flags.
func loadScenario(cmd *cobra.Command) (scenario, error) {
	v := viper.New()
	for key, flag := range scenarioFlags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return scenario{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
		}
	}

	// Bound flags always report IsSet, so presence is checked on the file
	// and on changed flags.
	given := func(key string) bool {
		return v.InConfig(key) || cmd.Flags().Changed(scenarioFlags[key])
	}
	if !given("diameter_min") {
		return scenario{}, errors.New("diameter_min is required (--diameter-min or scenario file)")
	}
	return scenario{
		request: scenarioRequest(v, given("diameter_max")),
		seed:    v.GetUint64("seed"),
		seeded:  given("seed"),
	}, nil
}

func scenarioRequest(v *viper.Viper, hasMax bool) domain.SimulationRequest {
	in := domain.ImpactInput{
		DiameterMinKm:  v.GetFloat64("diameter_min"),
		DiameterMaxKm:  v.GetFloat64("diameter_max"),
		VelocityKms:    v.GetFloat64("velocity_kms"),
		MissDistanceKm: v.GetFloat64("miss_distance_km"),
	}
	// A single diameter describes a fixed-size object.
	if !hasMax {
		in.DiameterMaxKm = in.DiameterMinKm
	}
	return domain.SimulationRequest{
		ObjectID:    v.GetString("object_id"),
		Name:        v.GetString("name"),
		ImpactInput: in,
	}
}

func render(w io.Writer, result domain.SimulationResult) error {
	if outputFormat == formatJSON {
		return writeJSON(w, result)
	}

	im, tr, env := result.Report.Impact, result.Report.Trajectory, result.Report.Environment
	label := result.Name
	if label == "" {
		label = result.ObjectID
	}
	if label != "" {
		fmt.Fprintf(w, "%s\n\n", label)
	}
	fmt.Fprintf(w, "Kinetic energy      %.3e J (%.3g Mt TNT)\n", im.KineticEnergyJoules, im.TNTEquivalentTons/1e6)
	fmt.Fprintf(w, "Crater              %.0f m wide, %.0f m deep\n", im.CraterDiameterM, im.CraterDepthM)
	fmt.Fprintf(w, "Fireball radius     %.2f km\n", im.FireballRadiusKm)
	fmt.Fprintf(w, "Seismic magnitude   %.1f\n", im.RichterEquivalent)
	fmt.Fprintf(w, "Impact probability  %.4f%%\n", im.ImpactProbability)
	fmt.Fprintf(w, "Approach angle      %.1f deg\n", tr.ApproachAngleDeg)
	fmt.Fprintf(w, "Severity            %s (%s)\n", env.Severity, env.Scenario)
	fmt.Fprintf(w, "Casualties          %d\n", env.CasualtiesEstimate)
	fmt.Fprintf(w, "Economic damage     $%d billion\n", env.EconomicDamageBillionUSD)
	fmt.Fprintf(w, "Recovery            %d years\n", env.RecoveryTimeYears)
	return nil
}
