// Package cache provides the optional Redis-backed cache of rendered location paths.
package cache

import (
	"context"
	"log/slog"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/lifecycle"
	"bookstore/internal/domain/service"
	"bookstore/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	pathKeyPrefix = "location:path:"
	// purgeBatchSize bounds the keys requested per SCAN round trip.
	purgeBatchSize = 500
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewLocationPathCache returns a Redis cache when redis is configured and a no-op cache otherwise.
func NewLocationPathCache(params Params) service.LocationPathCache {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, location path cache disabled")

		return NewNoopPathCache()
	}

	client := NewRedisClient(params.Config.Redis)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cache degrades to misses; it must not block startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, serving paths from the database", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisPathCache(client, params.Config.Location.PathCacheTTL)
}

// NewRedisClient opens a client for cfg. The caller closes it.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// redisPathCache stores one string key per location code.
type redisPathCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisPathCache wraps an existing client. A zero ttl keeps entries until invalidated.
func NewRedisPathCache(client redis.UniversalClient, ttl time.Duration) service.LocationPathCache {
	return &redisPathCache{client: client, ttl: ttl}
}

func pathKey(code string) string {
	return pathKeyPrefix + code
}

// Get returns the cached path of code.
func (c *redisPathCache) Get(ctx context.Context, code string) (string, error) {
	path, err := c.client.Get(ctx, pathKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read cached path")
	}

	return path, nil
}

// Set stores the path of code.
func (c *redisPathCache) Set(ctx context.Context, code, path string) error {
	if err := c.client.Set(ctx, pathKey(code), path, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache path")
	}

	return nil
}

// Delete drops the cached paths of codes in one round trip.
func (c *redisPathCache) Delete(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = pathKey(code)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to drop cached paths")
	}

	return nil
}

// Purge drops every cached path by scanning the key prefix.
func (c *redisPathCache) Purge(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, pathKeyPrefix+"*", purgeBatchSize).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "failed to purge cached path")
		}
	}

	return errors.Wrap(iter.Err(), "failed to scan cached paths")
}

// noopPathCache always misses.
type noopPathCache struct{}

// NewNoopPathCache returns a cache that stores nothing.
func NewNoopPathCache() service.LocationPathCache {
	return noopPathCache{}
}

func (noopPathCache) Get(context.Context, string) (string, error) {
	return "", service.ErrCacheMiss
}

func (noopPathCache) Set(context.Context, string, string) error { return nil }

func (noopPathCache) Delete(context.Context, ...string) error { return nil }

func (noopPathCache) Purge(context.Context) error { return nil }
