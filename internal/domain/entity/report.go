package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange is the half-open interval [From, To) on the order date.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsValid reports whether both ends are set and From precedes To.
func (r DateRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && r.From.Before(r.To)
}

// BookSales aggregates the order lines of one book. Lines of cancelled orders are never counted.
type BookSales struct {
	BookID       uuid.UUID
	Book         *Book // Populated by the reporting service.
	QuantitySold int64
	Revenue      decimal.Decimal // Sum of quantity times the unit price at order time.
}

// SalesStatistics summarises the whole order book.
type SalesStatistics struct {
	TotalOrders       int64
	OrdersByStatus    map[OrderStatus]int64
	Revenue           decimal.Decimal // Total of delivered and completed orders.
	AverageOrderValue decimal.Decimal // Mean total of delivered and completed orders.
	CopiesSold        int64
	BestSellers       []*BookSales
}
