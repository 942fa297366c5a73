package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the persistence operations of book reviews.
type ReviewRepository interface {
	// Create persists a new review. A second review of the same book by the same user
	// is reported as domainerrors.ErrReviewAlreadyExists.
	Create(ctx context.Context, review *entity.Review) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByBook returns the reviews of a book, newest first.
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Review, error)

	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uuid.UUID) error

	// RatingOf returns the average rating and review count of a book.
	RatingOf(ctx context.Context, bookID uuid.UUID) (*entity.BookRating, error)
}
