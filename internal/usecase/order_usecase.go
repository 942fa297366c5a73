package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line of an order.
type OrderItemInput struct {
	BookID   uuid.UUID
	Quantity int
}

// PlaceOrderInput defines an order. When Items is empty the user's cart is checked out and cleared.
type PlaceOrderInput struct {
	Items []OrderItemInput
}

// OrderUsecase defines the operations on orders.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	ListOrdersByStatus(ctx context.Context, status entity.OrderStatus, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	// UpdateStatus applies one transition of the order status table.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	CancelOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
	// UserTotalSpent sums the user's delivered and completed orders.
	UserTotalSpent(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
