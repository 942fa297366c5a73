package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel mirrors the 'books' table. A (title, author) pair is unique.
type BookModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title         string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_books_title_author,priority:1"`
	Author        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_books_title_author,priority:2;index:idx_books_author"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_books_category_id"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_books_price,price > 0"`
	StockQuantity int             `gorm:"not null;default:0;check:chk_books_stock,stock_quantity >= 0"`
	CoverImage    string          `gorm:"type:varchar(512)"`
	FileURL       string          `gorm:"type:varchar(512)"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
