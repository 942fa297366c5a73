//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisPathCache_Integration(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	c := NewRedisPathCache(client, time.Minute)

	_, err := c.Get(ctx, "K1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "K1", "Kigali City"))
	require.NoError(t, c.Set(ctx, "K1-D1", "Kigali City / Gasabo"))
	require.NoError(t, client.Set(ctx, "unrelated", "keep", 0).Err())

	path, err := c.Get(ctx, "K1-D1")
	require.NoError(t, err)
	assert.Equal(t, "Kigali City / Gasabo", path)

	require.NoError(t, c.Delete(ctx, "K1-D1"))
	_, err = c.Get(ctx, "K1-D1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, c.Purge(ctx))
	_, err = c.Get(ctx, "K1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	kept, err := client.Get(ctx, "unrelated").Result()
	require.NoError(t, err)
	assert.Equal(t, "keep", kept)
}
