package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Column sizes of catalog records, counted in characters.
const (
	MaxCategoryNameLength = 100
	MaxBookTitleLength    = 255
	MaxBookAuthorLength   = 255
	MaxBookURLLength      = 512
)

// Category groups books; its name is unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Book is a sellable title in the catalog.
type Book struct {
	ID            uuid.UUID
	Title         string
	Author        string
	CategoryID    uuid.UUID
	Category      *Category
	Price         decimal.Decimal // Always > 0.
	StockQuantity int             // Never negative.
	CoverImage    string
	FileURL       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InStock reports whether at least one copy is available.
func (b *Book) InStock() bool {
	return b.StockQuantity > 0
}

// BookFilter narrows a catalog search. Zero values are ignored.
type BookFilter struct {
	Keyword     string // Matches title or author, case-insensitive.
	Author      string
	CategoryID  *uuid.UUID
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	InStockOnly bool
}

// BookRating aggregates the reviews of one book.
type BookRating struct {
	BookID  uuid.UUID
	Average float64
	Count   int64
}
