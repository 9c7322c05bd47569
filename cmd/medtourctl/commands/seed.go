package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"medtour/internal/config"
	"medtour/internal/model"
	"medtour/internal/repository"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		file   string
		driver string
		dsn    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load a catalog into a SQL store",
		Long: "Validates a catalog (the bundled one unless --file is given), creates the schema\n" +
			"and upserts every record. Existing quotes and contact events are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := readCatalog(file)
			if err != nil {
				return err
			}
			if dryRun {
				printStats(cmd.OutOrStdout(), "Catalog is valid", repository.Stats(catalog))
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if driver != "" {
				cfg.Database.Driver = driver
			}
			if dsn != "" {
				cfg.Database.DSN = dsn
			}
			if cfg.Database.Driver == config.DriverMemory {
				return errors.New("seed needs a SQL store: set --driver or DATABASE_DRIVER to postgres or sqlite")
			}

			repo, err := repository.NewSQLRepository(cfg.Database.Driver, cfg.GetDSN(),
				cfg.Database.MaxConnections, cfg.Database.MaxIdleConnections)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			if err := repo.Migrate(ctx); err != nil {
				return err
			}
			if err := repo.Seed(ctx, catalog); err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), fmt.Sprintf("Seeded %s store", cfg.Database.Driver), repository.Stats(catalog))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (default: bundled catalog)")
	cmd.Flags().StringVar(&driver, "driver", "", "store driver, overrides DATABASE_DRIVER")
	cmd.Flags().StringVar(&dsn, "dsn", "", "connection string, overrides DATABASE_URL")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the catalog without touching a store")
	return cmd
}

func readCatalog(file string) (*model.Catalog, error) {
	if file == "" {
		return repository.DefaultCatalog()
	}
	return repository.LoadCatalogFile(file)
}

func printStats(w io.Writer, heading string, s model.CatalogStats) {
	fmt.Fprintln(w, heading)
	fmt.Fprintf(w, "  providers:    %d\n", s.Providers)
	fmt.Fprintf(w, "  hospitals:    %d\n", s.Hospitals)
	fmt.Fprintf(w, "  specialties:  %d\n", s.Specialties)
	fmt.Fprintf(w, "  doctors:      %d\n", s.Doctors)
	fmt.Fprintf(w, "  treatments:   %d\n", s.Treatments)
	fmt.Fprintf(w, "  testimonials: %d\n", s.Testimonials)
}
