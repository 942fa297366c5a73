package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// InsertLocationInput defines a new node of the tree. ParentCode is empty for provinces.
type InsertLocationInput struct {
	ParentCode string
	Code       string
	Name       string
	Type       entity.LocationType
}

// UsersByAncestorInput selects the ancestor whose descendants' users are wanted.
type UsersByAncestorInput struct {
	AncestorType entity.LocationType
	Match        string
	By           entity.MatchField
}

// --- Output DTOs ---

// LocationPath is the rendered full path of a node.
type LocationPath struct {
	Code string
	Path string
}

// LocationUsecase defines the operations on the administrative location tree.
type LocationUsecase interface {
	InsertLocation(ctx context.Context, input InsertLocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
	RenameLocation(ctx context.Context, code, name string) (*entity.Location, error)

	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	// ChildrenOf returns the direct children of parentCode, or the roots when parentCode is empty,
	// optionally restricted to wantedType.
	ChildrenOf(ctx context.Context, parentCode string, wantedType *entity.LocationType) ([]*entity.Location, error)
	ListLocations(ctx context.Context, locationType *entity.LocationType, page entity.PageRequest) (*entity.Page[*entity.Location], error)

	// AncestorOfType returns the nearest node of type target at or above code. ok is false when there is none.
	AncestorOfType(ctx context.Context, code string, target entity.LocationType) (ancestor *entity.Location, ok bool, err error)
	FullPath(ctx context.Context, code string) (*LocationPath, error)

	UsersByAncestor(ctx context.Context, input UsersByAncestorInput) ([]*entity.UserLocation, error)
}
