package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the operations on a user's shopping cart.
type CartUsecase interface {
	// AddItem puts quantity copies of a book in the cart, merging with an existing line for the same book.
	AddItem(ctx context.Context, userID, bookID uuid.UUID, quantity int) (*entity.CartItem, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*entity.CartSummary, error)
}
