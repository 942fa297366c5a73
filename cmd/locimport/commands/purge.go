package commands

import (
	"bookstore/internal/infra/cache"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// purgeCacheCmd drops cached full paths
var purgeCacheCmd = &cobra.Command{
	Use:   "purge-cache",
	Short: "Drop every cached full path from Redis",
	Long: `Drop every cached full path. Run it after editing the location table outside the API,
for example after a bulk rename through SQL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis is not configured")
		}

		client := cache.NewRedisClient(cfg.Redis)
		defer client.Close()

		if err := cache.NewRedisPathCache(client, 0).Purge(cmd.Context()); err != nil {
			return err
		}
		logger.Info("Location path cache purged")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCacheCmd)
}
