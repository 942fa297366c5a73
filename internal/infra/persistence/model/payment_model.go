package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. An order has at most one payment.
type PaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_payments_order_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_payments_user_id"`
	Method      string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_payments_amount,amount > 0"`
	Status      string          `gorm:"type:varchar(16);not null;default:PENDING"`
	PaymentDate time.Time       `gorm:"not null"`

	Order *OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
