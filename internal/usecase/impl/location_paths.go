package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/hierarchy"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pathResolver renders full paths of location nodes, reading through the path cache.
// Cache failures are logged and otherwise ignored.
type pathResolver struct {
	locationRepo repository.LocationRepository
	cache        service.LocationPathCache
	separator    string
	logger       *slog.Logger
}

func (r *pathResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// fullPath returns the path of loc, root first.
func (r *pathResolver) fullPath(ctx context.Context, loc *entity.Location) (string, error) {
	cached, err := r.cache.Get(ctx, loc.Code)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		r.log(ctx).Warn("Location path cache read failed", slog.String("code", loc.Code), slog.Any("error", err))
	}

	ancestry, err := r.locationRepo.FindAncestry(ctx, loc.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load location ancestry")
	}

	arena, err := hierarchy.NewArena(ancestry)
	if err != nil {
		return "", errors.Wrap(err, "failed to build location hierarchy")
	}

	path, err := arena.FullPath(loc.ID, r.separator)
	if err != nil {
		return "", errors.Wrap(err, "failed to render location path")
	}

	r.store(ctx, loc.Code, path)

	return path, nil
}

// fullPaths renders the paths of every id in locationIDs with a single ancestry query.
func (r *pathResolver) fullPaths(ctx context.Context, locationIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	paths := make(map[uuid.UUID]string, len(locationIDs))
	if len(locationIDs) == 0 {
		return paths, nil
	}

	ancestries, err := r.locationRepo.FindAncestries(ctx, locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location ancestries")
	}

	arena, err := hierarchy.NewArena(ancestries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build location hierarchy")
	}

	for _, id := range locationIDs {
		if _, done := paths[id]; done {
			continue
		}
		path, err := arena.FullPath(id, r.separator)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render path of location %s", id)
		}
		paths[id] = path
	}

	return paths, nil
}

func (r *pathResolver) store(ctx context.Context, code, path string) {
	if err := r.cache.Set(ctx, code, path); err != nil {
		r.log(ctx).Warn("Location path cache write failed", slog.String("code", code), slog.Any("error", err))
	}
}

// invalidate drops the cached paths of codes.
func (r *pathResolver) invalidate(ctx context.Context, codes ...string) {
	if len(codes) == 0 {
		return
	}
	if err := r.cache.Delete(ctx, codes...); err != nil {
		r.log(ctx).Warn("Location path cache invalidation failed", slog.Any("codes", codes), slog.Any("error", err))
	}
}
