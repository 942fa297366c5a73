package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderCompleted, true},
		{OrderCompleted, OrderPending, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderCompleted.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
	assert.False(t, OrderPending.IsTerminal())
	assert.False(t, OrderShipped.IsTerminal())
}

func TestOrder_RecalculateTotal(t *testing.T) {
	order := &Order{
		Details: []*OrderDetail{
			{Quantity: 2, Price: decimal.RequireFromString("12.50")},
			{Quantity: 1, Price: decimal.RequireFromString("7.25")},
		},
	}

	order.RecalculateTotal()

	assert.True(t, decimal.RequireFromString("32.25").Equal(order.TotalAmount), "got %s", order.TotalAmount)
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentSuccessful))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentSuccessful.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentFailed.CanTransitionTo(PaymentSuccessful))
	assert.False(t, PaymentPending.CanTransitionTo(PaymentPending))
}
