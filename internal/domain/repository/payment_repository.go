package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines the persistence operations of payments.
type PaymentRepository interface {
	// Create persists a new payment. A second payment for the same order is reported as domainerrors.ErrPaymentAlreadyExists.
	Create(ctx context.Context, payment *entity.Payment) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByUser returns the payments of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// UpdateStatus persists the status and payment date of payment, provided the stored status is still from.
	// It returns ErrInvalidStatusTransition when another writer settled the payment first.
	UpdateStatus(ctx context.Context, payment *entity.Payment, from entity.PaymentStatus) error
}
