package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one book in a user's cart. (UserID, BookID) is unique; adding the same book again merges quantities.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	Book      *Book
	Quantity  int
	AddedAt   time.Time
	UpdatedAt time.Time
}

// CartSummary totals a user's cart.
type CartSummary struct {
	UserID     uuid.UUID
	Items      []*CartItem
	TotalItems int
	TotalPrice decimal.Decimal
}

// SummarizeCart computes item and price totals. Items without a preloaded book count towards
// TotalItems only.
func SummarizeCart(userID uuid.UUID, items []*CartItem) *CartSummary {
	summary := &CartSummary{UserID: userID, Items: items, TotalPrice: decimal.Zero}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		if item.Book != nil {
			summary.TotalPrice = summary.TotalPrice.Add(item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return summary
}
