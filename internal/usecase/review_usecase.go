package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines a review of a book.
type CreateReviewInput struct {
	BookID  uuid.UUID
	Rating  int
	Comment string
}

// UpdateReviewInput carries the review fields to change. Nil fields are left as they are.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewUsecase defines the operations on book reviews.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (*entity.Review, error)
	ListBookReviews(ctx context.Context, bookID uuid.UUID) ([]*entity.Review, error)
	UpdateReview(ctx context.Context, actor Actor, id uuid.UUID, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actor Actor, id uuid.UUID) error
	BookRating(ctx context.Context, bookID uuid.UUID) (*entity.BookRating, error)
}
