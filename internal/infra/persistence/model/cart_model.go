package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. A user holds at most one row per book.
type CartItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_book,priority:1"`
	BookID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_book,priority:2"`
	Quantity int       `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`

	AddedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
