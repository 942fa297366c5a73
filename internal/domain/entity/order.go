package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderTransitions lists the statuses reachable from each status. Terminal statuses have no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderCompleted},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CountsAsSpent reports whether orders in this status contribute to a user's total spending.
func (s OrderStatus) CountsAsSpent() bool {
	return s == OrderCompleted || s == OrderDelivered
}

// Order is a purchase made by a user.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Details     []*OrderDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderDetail is one line of an order. Price is the unit price captured when the order was placed.
type OrderDetail struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	BookID   uuid.UUID
	Quantity int
	Price    decimal.Decimal
}

// Subtotal returns Quantity × Price.
func (d *OrderDetail) Subtotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// RecalculateTotal sets TotalAmount to the sum of the detail subtotals.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, detail := range o.Details {
		total = total.Add(detail.Subtotal())
	}
	o.TotalAmount = total
}
