package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"bookstore/internal/domain/entity"
	"bookstore/internal/infra/cache"
	"bookstore/internal/infra/locationcsv"
	"bookstore/internal/infra/persistence/postgres"
	"bookstore/internal/usecase/impl"
	"bookstore/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Import flags
	csvFile string
	dryRun  bool
	migrate bool
)

// validateCmd checks a CSV file offline
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a location CSV file without touching the database",
	Long: `Check a location CSV file (code,name,type,parent_code) for duplicate codes and
parent/child type mismatches between its rows.

Examples:
  locimport validate --file data/rwanda.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadChecked(cmd)
		if err != nil {
			return err
		}
		printLevelCounts(cmd, records)

		return nil
	},
}

// importCmd inserts the rows of a CSV file
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Insert the rows of a location CSV file, parents first",
	Long: `Insert the rows of a location CSV file (code,name,type,parent_code) into the tree.
Rows are ordered from PROVINCE down to VILLAGE, codes already present are skipped and
rows violating the hierarchy are reported and left out.

Examples:
  locimport import --file data/rwanda.csv
  locimport import --file data/rwanda.csv --migrate
  locimport import --file data/rwanda.csv --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadChecked(cmd)
		if err != nil {
			return err
		}
		if dryRun {
			printLevelCounts(cmd, records)

			return nil
		}

		return runImport(cmd, records)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{validateCmd, importCmd} {
		cmd.Flags().StringVarP(&csvFile, "file", "f", "", "Location CSV file")
		_ = cmd.MarkFlagRequired("file")
		rootCmd.AddCommand(cmd)
	}
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and report without inserting")
	importCmd.Flags().BoolVar(&migrate, "migrate", false, "Migrate the schema before importing")
}

// loadChecked reads csvFile, reports its digest and fails when rows contradict each other.
func loadChecked(cmd *cobra.Command) ([]locationcsv.Record, error) {
	digest, err := util.DigestFile(csvFile)
	if err != nil {
		return nil, err
	}
	cmd.Printf("%s: %s, sha256 %s\n", csvFile, util.FormatBytes(digest.SizeBytes), digest.SHA256)

	records, err := locationcsv.LoadFile(csvFile)
	if err != nil {
		return nil, err
	}

	if problems := locationcsv.Validate(records); len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintln(os.Stderr, problem)
		}

		return nil, errors.Errorf("%d problems found in %s", len(problems), csvFile)
	}

	return records, nil
}

func printLevelCounts(cmd *cobra.Command, records []locationcsv.Record) {
	counts := make(map[entity.LocationType]int, entity.MaxLocationDepth)
	for _, record := range records {
		counts[record.Type]++
	}
	for _, level := range entity.LocationTypes() {
		cmd.Printf("%-8s %d\n", level, counts[level])
	}
}

func runImport(cmd *cobra.Command, records []locationcsv.Record) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	if migrate {
		if err := postgres.Migrate(cmd.Context(), db); err != nil {
			return err
		}
	}

	// New nodes never invalidate cached paths, so the import runs without the cache.
	locationUC := impl.NewLocationService(impl.LocationServiceParams{
		LocationRepo: postgres.NewLocationRepository(db),
		UserRepo:     postgres.NewUserRepository(db),
		PathCache:    cache.NewNoopPathCache(),
		Config:       cfg,
		Logger:       logger,
	})

	start := time.Now()
	result, err := locationcsv.NewImporter(locationUC, logger).Import(cmd.Context(), records)
	if err != nil {
		return err
	}

	logger.Info("Location import finished",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)
	if result.Failed > 0 {
		return errors.Errorf("%d rows rejected", result.Failed)
	}

	return nil
}
