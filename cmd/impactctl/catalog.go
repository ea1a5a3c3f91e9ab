package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/neo-impact-service/internal/adapter/catalog"
	"github.com/couchcryptid/neo-impact-service/internal/config"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

var (
	catalogDriver string
	catalogDSN    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the near-Earth object catalog",
	Long: `Manage the near-Earth object catalog.

The catalog defaults to CATALOG_DRIVER and CATALOG_DSN from the environment.`,
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load the built-in objects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, s *catalog.Store) error {
			n, err := s.Seed(ctx, catalog.SeedObjects())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d objects\n", n)
			return nil
		})
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued objects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, s *catalog.Store) error {
			objects, err := s.List(ctx)
			if err != nil {
				return err
			}
			if outputFormat == formatJSON {
				return writeJSON(cmd.OutOrStdout(), objects)
			}
			return renderObjects(cmd.OutOrStdout(), objects)
		})
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Simulate the closest approach of a catalogued object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, s *catalog.Store) error {
			obj, err := s.Get(ctx, args[0])
			if errors.Is(err, domain.ErrObjectNotFound) {
				logger().Warn("object not in catalog, using default", "object_id", args[0])
				obj = domain.DefaultObject(args[0])
			} else if err != nil {
				return err
			}

			result, err := domain.NewSimulator(nil, nil).Simulate(domain.SimulationRequest{
				ObjectID:    obj.ID,
				Name:        obj.Name,
				ImpactInput: obj.ImpactInput(),
			})
			if err != nil {
				return fmt.Errorf("simulate %s: %w", obj.ID, err)
			}
			if outputFormat == formatText {
				fmt.Fprintln(cmd.OutOrStdout(), obj.HazardSummary())
			}
			return render(cmd.OutOrStdout(), result)
		})
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDriver, "driver",
		sharedcfg.EnvOrDefault("CATALOG_DRIVER", config.DriverSQLite), "Catalog driver (sqlite, postgres)")
	catalogCmd.PersistentFlags().StringVar(&catalogDSN, "dsn",
		sharedcfg.EnvOrDefault("CATALOG_DSN", "file:neo_catalog.db"), "Catalog data source name")

	catalogCmd.AddCommand(catalogSeedCmd, catalogListCmd, catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

// withStore opens and migrates the catalog for the duration of fn.
func withStore(ctx context.Context, fn func(context.Context, *catalog.Store) error) error {
	s, err := catalog.Open(ctx, catalogDriver, catalogDSN, logger())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}
	return fn(ctx, s)
}

func renderObjects(w io.Writer, objects []domain.Object) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tDIAMETER (km)\tHAZARDOUS")
	for _, o := range objects {
		size := fmt.Sprintf("%g", o.DiameterMinKm)
		if o.DiameterMaxKm != o.DiameterMinKm {
			size = fmt.Sprintf("%g-%g", o.DiameterMinKm, o.DiameterMaxKm)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", o.ID, o.Name, o.Kind, size, o.IsHazardous)
	}
	return tw.Flush()
}
