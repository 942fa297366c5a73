package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportUsecase defines the sales reports available to administrators.
type ReportUsecase interface {
	// OrdersByLocation lists the orders of the users attached anywhere below the node with code.
	OrdersByLocation(ctx context.Context, code string, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	OrdersByDateRange(ctx context.Context, period entity.DateRange, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	// Revenue sums the delivered and completed orders dated within period.
	Revenue(ctx context.Context, period entity.DateRange) (decimal.Decimal, error)
	BestSellingBooks(ctx context.Context, limit int) ([]*entity.BookSales, error)
	QuantitySold(ctx context.Context, bookID uuid.UUID) (int64, error)
	SalesStatistics(ctx context.Context) (*entity.SalesStatistics, error)
}
