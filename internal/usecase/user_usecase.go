package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FullName     string
	Email        string
	Password     string
	Phone        string
	LocationCode string // Optional; any level of the tree may be attached.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the profile fields to change. Nil fields are left as they are.
type UpdateProfileInput struct {
	FullName *string
	Phone    *string
}

// ChangePasswordInput defines a password change by the account owner.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64 // Seconds.
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserWithLocation(ctx context.Context, id uuid.UUID) (*entity.UserLocation, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, input ChangePasswordInput) error
	ChangeRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error)
	// AssignLocation attaches the user to the node with locationCode; an empty code detaches them.
	AssignLocation(ctx context.Context, id uuid.UUID, locationCode string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
