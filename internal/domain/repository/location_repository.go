// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationFilter narrows a location listing. Zero values are ignored.
type LocationFilter struct {
	Type     *entity.LocationType
	ParentID *uuid.UUID
	// RootsOnly restricts the listing to nodes without a parent. ParentID is ignored when set.
	RootsOnly bool
}

// LocationRepository defines the persistence operations of the administrative location tree.
type LocationRepository interface {
	// Create persists a new node. Code uniqueness is enforced by the store;
	// a conflict is reported as domainerrors.ErrDuplicateCode.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a node by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindByCode retrieves a node by its code.
	FindByCode(ctx context.Context, code string) (*entity.Location, error)

	// FindAll returns the nodes matching filter ordered by code.
	FindAll(ctx context.Context, filter LocationFilter) ([]*entity.Location, error)

	// List returns one page of the nodes matching filter together with the total count.
	List(ctx context.Context, filter LocationFilter, page entity.PageRequest) ([]*entity.Location, int64, error)

	// CountChildren returns the number of nodes whose parent is id.
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)

	// UpdateName changes the display name of a node.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes a node. A node still referenced as a parent is reported as domainerrors.ErrHasChildren.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAncestry returns the node with the given id and all of its ancestors, in no particular order.
	FindAncestry(ctx context.Context, id uuid.UUID) ([]*entity.Location, error)

	// FindAncestries returns every node in the ancestry of any of ids, each node once.
	FindAncestries(ctx context.Context, ids []uuid.UUID) ([]*entity.Location, error)

	// FindByTypeAndMatch returns the nodes of the given type whose code or name, as selected by by, equals value.
	FindByTypeAndMatch(ctx context.Context, locationType entity.LocationType, value string, by entity.MatchField) ([]*entity.Location, error)

	// FindSubtreeIDs returns the ids of the given nodes and of all their descendants.
	FindSubtreeIDs(ctx context.Context, rootIDs []uuid.UUID) ([]uuid.UUID, error)

	// FindDescendants returns every node strictly below id.
	FindDescendants(ctx context.Context, id uuid.UUID) ([]*entity.Location, error)
}
