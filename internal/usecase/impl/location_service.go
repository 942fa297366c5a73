package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bookstore/config"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/hierarchy"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	paths        *pathResolver
	cfg          *config.Config
	now          func() time.Time
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	UserRepo     repository.UserRepository
	PathCache    service.LocationPathCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		userRepo:     params.UserRepo,
		paths: &pathResolver{
			locationRepo: params.LocationRepo,
			cache:        params.PathCache,
			separator:    pathSeparator(params.Config),
			logger:       params.Logger,
		},
		cfg:    params.Config,
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InsertLocation adds a node under the node with input.ParentCode, or as a root when no parent is given.
// Code uniqueness is left to the store.
func (srv *locationService) InsertLocation(ctx context.Context, input usecase.InsertLocationInput) (*entity.Location, error) {
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("code and name are required")
	}
	if err := checkLength("code", code, entity.MaxLocationCodeLength); err != nil {
		return nil, err
	}
	if err := checkLength("name", name, entity.MaxLocationNameLength); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location type " + input.Type.String())
	}

	location := &entity.Location{
		ID:   uuid.New(),
		Code: code,
		Name: name,
		Type: input.Type,
	}

	parentCode := strings.TrimSpace(input.ParentCode)
	if parentCode == "" {
		if !input.Type.IsRoot() {
			return nil, domainerrors.ErrInvalidHierarchy.WrapMessage(input.Type.String() + " requires a parent")
		}
	} else {
		parent, err := srv.locationRepo.FindByCode(ctx, parentCode)
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return nil, domainerrors.ErrParentNotFound.WrapMessage("no location with code " + parentCode)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find parent location")
		}
		if !parent.Type.CanParent(input.Type) {
			return nil, domainerrors.ErrInvalidHierarchy.WrapMessage(
				input.Type.String() + " cannot be placed under " + parent.Type.String())
		}
		location.ParentID = &parent.ID
	}

	now := srv.now()
	location.CreatedAt = now
	location.UpdatedAt = now

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Info("Location created",
		slog.String("code", location.Code),
		slog.String("type", location.Type.String()),
		slog.String("parentCode", parentCode),
	)

	return location, nil
}

// DeleteLocation removes a childless node.
func (srv *locationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find location")
	}

	children, err := srv.locationRepo.CountChildren(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count child locations")
	}
	if children > 0 {
		return domainerrors.ErrHasChildren.WrapMessage(location.Code + " still has child locations")
	}

	// The FK still rejects a child inserted after the count.
	if err := srv.locationRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	srv.paths.invalidate(ctx, location.Code)
	srv.log(ctx).Info("Location deleted", slog.String("code", location.Code))

	return nil
}

// RenameLocation changes the display name of a node. Code and type never change.
func (srv *locationService) RenameLocation(ctx context.Context, code, name string) (*entity.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if err := checkLength("name", name, entity.MaxLocationNameLength); err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}
	if location.Name == name {
		return location, nil
	}

	if err := srv.locationRepo.UpdateName(ctx, location.ID, name); err != nil {
		return nil, errors.Wrap(err, "failed to rename location")
	}
	location.Name = name
	location.UpdatedAt = srv.now()

	// Every path below the node embeds its name.
	descendants, err := srv.locationRepo.FindDescendants(ctx, location.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load descendants for cache invalidation", slog.String("code", code), slog.Any("error", err))
	}
	codes := make([]string, 0, len(descendants)+1)
	codes = append(codes, location.Code)
	for _, descendant := range descendants {
		codes = append(codes, descendant.Code)
	}
	srv.paths.invalidate(ctx, codes...)

	return location, nil
}

// GetByCode retrieves a node by its code.
func (srv *locationService) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location by code")
	}

	return location, nil
}

// GetByID retrieves a node by its id.
func (srv *locationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return location, nil
}

// ChildrenOf returns the direct children of parentCode, or the roots when parentCode is empty.
func (srv *locationService) ChildrenOf(ctx context.Context, parentCode string, wantedType *entity.LocationType) ([]*entity.Location, error) {
	if wantedType != nil && !wantedType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location type " + wantedType.String())
	}

	filter := repository.LocationFilter{Type: wantedType}
	parentCode = strings.TrimSpace(parentCode)
	if parentCode == "" {
		filter.RootsOnly = true
	} else {
		parent, err := srv.locationRepo.FindByCode(ctx, parentCode)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find parent location")
		}
		filter.ParentID = &parent.ID
	}

	children, err := srv.locationRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child locations")
	}

	return children, nil
}

// ListLocations returns one page of nodes, optionally of a single type.
func (srv *locationService) ListLocations(ctx context.Context, locationType *entity.LocationType, page entity.PageRequest) (*entity.Page[*entity.Location], error) {
	if locationType != nil && !locationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location type " + locationType.String())
	}

	page = normalizePage(srv.cfg, page)
	locations, total, err := srv.locationRepo.List(ctx, repository.LocationFilter{Type: locationType}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return entity.NewPage(locations, page, total), nil
}

// AncestorOfType returns the nearest node of type target at or above the node with code.
func (srv *locationService) AncestorOfType(ctx context.Context, code string, target entity.LocationType) (*entity.Location, bool, error) {
	if !target.IsValid() {
		return nil, false, domainerrors.ErrValidationFailed.WrapMessage("unknown location type " + target.String())
	}

	location, err := srv.locationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find location")
	}
	if location.Type == target {
		return location, true, nil
	}
	// Ancestors sit strictly above the node.
	if target.Level() > location.Type.Level() {
		return nil, false, nil
	}

	arena, err := srv.ancestryArena(ctx, location.ID)
	if err != nil {
		return nil, false, err
	}

	ancestor, ok := arena.AncestorOfType(location.ID, target)

	return ancestor, ok, nil
}

// FullPath renders the ancestor chain of the node with code, root first.
func (srv *locationService) FullPath(ctx context.Context, code string) (*usecase.LocationPath, error) {
	location, err := srv.locationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}

	path, err := srv.paths.fullPath(ctx, location)
	if err != nil {
		return nil, err
	}

	return &usecase.LocationPath{Code: location.Code, Path: path}, nil
}

// UsersByAncestor returns every user whose location lies at or below a node of
// input.AncestorType matching input.Match.
func (srv *locationService) UsersByAncestor(ctx context.Context, input usecase.UsersByAncestorInput) ([]*entity.UserLocation, error) {
	if !input.AncestorType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location type " + input.AncestorType.String())
	}
	if !input.By.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("by must be code, name or empty")
	}
	if input.Match == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("match value is required")
	}

	ancestors, err := srv.locationRepo.FindByTypeAndMatch(ctx, input.AncestorType, input.Match, input.By)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match ancestor locations")
	}
	if len(ancestors) == 0 {
		return []*entity.UserLocation{}, nil
	}

	rootIDs := make([]uuid.UUID, 0, len(ancestors))
	for _, ancestor := range ancestors {
		rootIDs = append(rootIDs, ancestor.ID)
	}

	subtree, err := srv.locationRepo.FindSubtreeIDs(ctx, rootIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location subtree")
	}

	users, err := srv.userRepo.FindByLocationIDs(ctx, subtree)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by location")
	}

	locationIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		if user.LocationID != nil {
			locationIDs = append(locationIDs, *user.LocationID)
		}
	}

	paths, err := srv.paths.fullPaths(ctx, locationIDs)
	if err != nil {
		return nil, err
	}

	results := make([]*entity.UserLocation, 0, len(users))
	for _, user := range users {
		if user.LocationID == nil {
			continue
		}
		results = append(results, &entity.UserLocation{
			User:     user,
			Location: user.Location,
			Path:     paths[*user.LocationID],
		})
	}

	srv.log(ctx).Debug("Users attributed to ancestor",
		slog.String("type", input.AncestorType.String()),
		slog.String("match", input.Match),
		slog.Int("ancestors", len(ancestors)),
		slog.Int("users", len(results)),
	)

	return results, nil
}

func (srv *locationService) ancestryArena(ctx context.Context, id uuid.UUID) (*hierarchy.Arena, error) {
	ancestry, err := srv.locationRepo.FindAncestry(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location ancestry")
	}

	arena, err := hierarchy.NewArena(ancestry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build location hierarchy")
	}

	return arena, nil
}
