package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput defines a payment for an order. The amount is the order total.
type CreatePaymentInput struct {
	OrderID uuid.UUID
	Method  entity.PaymentMethod
}

// PaymentUsecase defines the operations on payments. No gateway is involved;
// processing only moves the payment through its statuses.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, actor Actor, input CreatePaymentInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Payment, error)
	ListUserPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
	// ProcessPayment marks a pending payment successful and moves a pending order to processing.
	ProcessPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FailPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
}
