package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the persistence operations of shopping carts.
type CartRepository interface {
	// AddItem inserts item or, when the user already has the book in the cart,
	// adds item.Quantity to the stored quantity. item is refreshed with the stored row.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// FindByID retrieves a cart item with its book preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindByUser returns the cart of a user with books preloaded, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	RemoveItem(ctx context.Context, id uuid.UUID) error

	// Clear removes every item in the cart of a user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
