package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "CARD"
	PaymentMobileMoney  PaymentMethod = "MOBILE_MONEY"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCash         PaymentMethod = "CASH"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentMobileMoney, PaymentBankTransfer, PaymentCash:
		return true
	default:
		return false
	}
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentFailed     PaymentStatus = "FAILED"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSuccessful, PaymentFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a payment may move from s to next. Only pending payments settle.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == PaymentPending && (next == PaymentSuccessful || next == PaymentFailed)
}

// Payment records the settlement of one order.
type Payment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	UserID      uuid.UUID
	Method      PaymentMethod
	Amount      decimal.Decimal
	Status      PaymentStatus
	PaymentDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
