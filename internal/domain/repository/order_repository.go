package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the persistence operations of orders and their details.
type OrderRepository interface {
	// Create persists an order together with its details.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its details preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser returns one page of a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Order, int64, error)

	// FindByStatus returns one page of the orders in status, newest first.
	FindByStatus(ctx context.Context, status entity.OrderStatus, page entity.PageRequest) ([]*entity.Order, int64, error)

	// UpdateStatus persists the status and order date of order, provided the stored status is still from.
	// It returns ErrInvalidStatusTransition when another writer moved the order first.
	UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error

	// SumTotalByUser returns the sum of the totals of a user's orders in any of statuses.
	SumTotalByUser(ctx context.Context, userID uuid.UUID, statuses []entity.OrderStatus) (decimal.Decimal, error)

	// FindByUserLocations returns one page of the orders placed by users attached to any of locationIDs.
	FindByUserLocations(ctx context.Context, locationIDs []uuid.UUID, page entity.PageRequest) ([]*entity.Order, int64, error)

	// FindByDateRange returns one page of the orders dated within period, newest first.
	FindByDateRange(ctx context.Context, period entity.DateRange, page entity.PageRequest) ([]*entity.Order, int64, error)

	// SumTotalBetween returns the sum of the totals of the orders in any of statuses dated within period.
	SumTotalBetween(ctx context.Context, statuses []entity.OrderStatus, period entity.DateRange) (decimal.Decimal, error)

	// SumTotal returns the sum of the totals of all orders in any of statuses.
	SumTotal(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error)

	// AverageTotal returns the mean total of the orders in any of statuses, or zero when there are none.
	AverageTotal(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error)

	// CountByStatus returns the number of orders per status. Statuses without orders are absent.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// TopBookSales returns the limit best-selling books by copies sold.
	TopBookSales(ctx context.Context, limit int) ([]*entity.BookSales, error)

	// QuantitySold returns the copies of a book sold across all orders that were not cancelled.
	QuantitySold(ctx context.Context, bookID uuid.UUID) (int64, error)

	// TotalQuantitySold returns the copies sold across all orders that were not cancelled.
	TotalQuantitySold(ctx context.Context) (int64, error)
}
