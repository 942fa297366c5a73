package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// UserFilter narrows a user listing. Zero values are ignored.
type UserFilter struct {
	Role     *entity.Role
	NameLike string // Case-insensitive substring of FullName.
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity. A duplicate email is reported as domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile fields, role and location of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, through the store's cascades, their cart, reviews and payments.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of the users matching filter together with the total count.
	List(ctx context.Context, filter UserFilter, page entity.PageRequest) ([]*entity.User, int64, error)

	// CountByRole returns the number of users holding role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// FindByLocationIDs returns the users attached to any of locationIDs, with Location preloaded.
	FindByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) ([]*entity.User, error)
}
