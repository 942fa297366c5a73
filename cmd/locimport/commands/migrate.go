package commands

import (
	"log/slog"
	"time"

	"bookstore/internal/infra/persistence/postgres"
	"bookstore/internal/util"

	"github.com/spf13/cobra"
)

// migrateCmd applies the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		start := time.Now()
		if err := postgres.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("Schema migrated", slog.String("took", util.FormatDuration(time.Since(start))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
