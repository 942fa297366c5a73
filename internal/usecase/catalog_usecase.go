package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookInput defines a new catalog entry.
type CreateBookInput struct {
	Title         string
	Author        string
	CategoryID    uuid.UUID
	Price         decimal.Decimal
	StockQuantity int
	CoverImage    string
	FileURL       string
}

// UpdateBookInput carries the book fields to change. Nil fields are left as they are.
type UpdateBookInput struct {
	Title      *string
	Author     *string
	CategoryID *uuid.UUID
	Price      *decimal.Decimal
	CoverImage *string
	FileURL    *string
}

// CategoryUsecase defines the operations on book categories.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	RenameCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error)
	// DeleteCategory refuses categories that still hold books.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	HasBooks(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookUsecase defines the operations on the catalog.
type BookUsecase interface {
	CreateBook(ctx context.Context, input CreateBookInput) (*entity.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	SearchBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (*entity.Page[*entity.Book], error)
	UpdateBook(ctx context.Context, id uuid.UUID, input UpdateBookInput) (*entity.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	SetStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error)
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error)
}
