// Package commands implements the locimport command line tool for maintaining the location tree.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"bookstore/config"
	logs "bookstore/internal/infra/log"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "locimport",
	Short: "Maintain the bookstore location tree",
	Long: `locimport loads Rwanda's administrative hierarchy into the bookstore database.

Subcommands:
  migrate      - Create or update the database schema
  validate     - Check a location CSV file without touching the database
  import       - Insert the rows of a location CSV file, parents first
  purge-cache  - Drop every cached full path from Redis

Configuration is read from config/config.yaml and environment variables, like the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

// loadRuntime reads the configuration and builds a logger writing to stderr.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Env.Log.Level = "debug"
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
