package service

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by LocationPathCache.Get when no path is cached for a code.
var ErrCacheMiss = errors.New("location path cache miss")

// LocationPathCache stores rendered full paths keyed by location code.
// Implementations must treat every failure as a miss; the tree is always the source of truth.
type LocationPathCache interface {
	// Get returns the cached path of code, or ErrCacheMiss.
	Get(ctx context.Context, code string) (string, error)

	// Set stores the path of code.
	Set(ctx context.Context, code, path string) error

	// Delete drops the cached paths of codes.
	Delete(ctx context.Context, codes ...string) error

	// Purge drops every cached path.
	Purge(ctx context.Context) error
}
