package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user_id"`
	OrderDate   time.Time       `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);not null;default:PENDING;index:idx_orders_status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	User    *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Details []*OrderDetailModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel mirrors the 'order_details' table. Price is the unit price at order time.
type OrderDetailModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_details_order_id"`
	BookID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_details_book_id"`
	Quantity int             `gorm:"not null;check:chk_order_details_quantity,quantity > 0"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
