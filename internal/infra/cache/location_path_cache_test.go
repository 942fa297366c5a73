package cache

import (
	"context"
	"testing"

	"bookstore/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestNoopPathCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopPathCache()

	assert.NoError(t, c.Set(ctx, "K1", "Kigali City"))

	_, err := c.Get(ctx, "K1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	assert.NoError(t, c.Delete(ctx, "K1", "K1-D1"))
	assert.NoError(t, c.Purge(ctx))
}

func TestPathKey(t *testing.T) {
	assert.Equal(t, "location:path:K1-D1", pathKey("K1-D1"))
}
