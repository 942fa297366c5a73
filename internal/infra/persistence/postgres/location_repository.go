// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ancestryQuery collects the seed nodes and every ancestor above them.
// UNION drops repeated rows, which also stops the recursion on a corrupted cyclic chain.
const ancestryQuery = `
WITH RECURSIVE ancestry AS (
	SELECT l.* FROM locations l WHERE l.id IN ?
	UNION
	SELECT p.* FROM locations p JOIN ancestry a ON p.id = a.parent_id
)
SELECT * FROM ancestry`

// subtreeQuery collects the ids of the seed nodes and of everything below them.
const subtreeQuery = `
WITH RECURSIVE subtree AS (
	SELECT l.id FROM locations l WHERE l.id IN ?
	UNION
	SELECT c.id FROM locations c JOIN subtree s ON c.parent_id = s.id
)
SELECT id FROM subtree`

// descendantsQuery collects every node strictly below the seed node.
const descendantsQuery = `
WITH RECURSIVE descendants AS (
	SELECT c.* FROM locations c WHERE c.parent_id = ?
	UNION
	SELECT g.* FROM locations g JOIN descendants d ON g.parent_id = d.id
)
SELECT * FROM descendants ORDER BY code`

// locationRepository implements the repository.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create persists a new node. The unique index on code is the only duplicate check.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCode.WrapMessage("code " + location.Code)
		}
		if isForeignKeyConstraintViolation(err) {
			// The parent disappeared between lookup and insert.
			return domainerrors.ErrParentNotFound.WrapMessage("parent was removed concurrently")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid location fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a node by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCode retrieves a node by its code.
func (repo *locationRepository) FindByCode(ctx context.Context, code string) (*entity.Location, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *locationRepository) findOne(ctx context.Context, query string, arg any) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&locationM), nil
}

// FindAll returns the nodes matching filter ordered by code.
func (repo *locationRepository) FindAll(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Scopes(filterLocations(filter)).
		Order("code").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return toLocationDomains(locationModels), nil
}

// List returns one page of the nodes matching filter together with the total count.
func (repo *locationRepository) List(ctx context.Context, filter repository.LocationFilter, page entity.PageRequest) ([]*entity.Location, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Scopes(filterLocations(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count locations")
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Scopes(filterLocations(filter), paginate(page)).
		Order("code").
		Find(&locationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list locations")
	}

	return toLocationDomains(locationModels), total, nil
}

func filterLocations(filter repository.LocationFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Type != nil {
			db = db.Where("type = ?", filter.Type.String())
		}
		switch {
		case filter.RootsOnly:
			db = db.Where("parent_id IS NULL")
		case filter.ParentID != nil:
			db = db.Where("parent_id = ?", *filter.ParentID)
		}

		return db
	}
}

// CountChildren returns the number of nodes whose parent is id.
func (repo *locationRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("parent_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count child locations")
	}

	return count, nil
}

// UpdateName changes the display name of a node.
func (repo *locationRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rename location")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}

	return nil
}

// Delete removes a node. The RESTRICT foreign key on parent_id refuses nodes that still have children.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrHasChildren.WrapMessage("location is referenced as a parent")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}

	return nil
}

// FindAncestry returns the node with the given id and all of its ancestors.
func (repo *locationRepository) FindAncestry(ctx context.Context, id uuid.UUID) ([]*entity.Location, error) {
	locations, err := repo.FindAncestries(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, domainerrors.ErrLocationNotFound
	}

	return locations, nil
}

// FindAncestries returns every node in the ancestry of any of ids, each node once.
func (repo *locationRepository) FindAncestries(ctx context.Context, ids []uuid.UUID) ([]*entity.Location, error) {
	if len(ids) == 0 {
		return []*entity.Location{}, nil
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).Raw(ancestryQuery, ids).Scan(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load location ancestry")
	}

	return toLocationDomains(locationModels), nil
}

// FindByTypeAndMatch returns the nodes of the given type whose code or name, as selected by by, equals value.
func (repo *locationRepository) FindByTypeAndMatch(ctx context.Context, locationType entity.LocationType, value string, by entity.MatchField) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Where("type = ?", locationType.String())

	switch by {
	case entity.MatchByCode:
		query = query.Where("code = ?", value)
	case entity.MatchByName:
		query = query.Where("name = ?", value)
	case entity.MatchByAny:
		query = query.Where("code = ? OR name = ?", value, value)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown match field " + string(by))
	}

	var locationModels []*model.LocationModel
	if err := query.Order("code").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to match locations")
	}

	return toLocationDomains(locationModels), nil
}

// FindSubtreeIDs returns the ids of the given nodes and of all their descendants.
func (repo *locationRepository) FindSubtreeIDs(ctx context.Context, rootIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(rootIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var rows []idRow
	if err := repo.db.WithContext(ctx).Raw(subtreeQuery, rootIDs).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load location subtree")
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	return ids, nil
}

// FindDescendants returns every node strictly below id, ordered by code.
func (repo *locationRepository) FindDescendants(ctx context.Context, id uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).Raw(descendantsQuery, id).Scan(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load location descendants")
	}

	return toLocationDomains(locationModels), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Type:      entity.LocationType(data.Type),
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toLocationDomains(models []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(models))
	for _, m := range models {
		locations = append(locations, toLocationDomain(m))
	}

	return locations
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Type:      data.Type.String(),
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
