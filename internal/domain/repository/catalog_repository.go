package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines the persistence operations of book categories.
type CategoryRepository interface {
	// Create persists a new category. A duplicate name is reported as domainerrors.ErrCategoryAlreadyExists.
	Create(ctx context.Context, category *entity.Category) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll returns every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. A category still referenced by a book is reported as domainerrors.ErrCategoryInUse.
	Delete(ctx context.Context, id uuid.UUID) error

	// HasBooks reports whether any book belongs to the category.
	HasBooks(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookRepository defines the persistence operations of the catalog.
type BookRepository interface {
	// Create persists a new book. A duplicate (title, author) pair is reported as domainerrors.ErrBookAlreadyExists.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a book with its category preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIDs retrieves the books with the given ids. Missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error)

	// Search returns one page of the books matching filter together with the total count.
	Search(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) ([]*entity.Book, int64, error)

	Update(ctx context.Context, book *entity.Book) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SetStock overwrites the stock quantity of a book.
	SetStock(ctx context.Context, id uuid.UUID, quantity int) error

	// DecreaseStock atomically removes quantity copies from stock.
	// It fails with domainerrors.ErrInsufficientStock when fewer copies are available.
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncreaseStock atomically returns quantity copies to stock.
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error
}
