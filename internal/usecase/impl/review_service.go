package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
	now        func() time.Time
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	BookRepo   repository.BookRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		bookRepo:   params.BookRepo,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records the user's review of a book. A second review of the same book is rejected by the store.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	if _, err := srv.bookRepo.FindByID(ctx, input.BookID); err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	now := srv.now()
	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    input.BookID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.String("reviewID", review.ID.String()), slog.String("bookID", input.BookID.String()))

	return review, nil
}

func (srv *reviewService) ListBookReviews(ctx context.Context, bookID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByBook(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// UpdateReview changes the rating or comment. Only the author may edit a review.
func (srv *reviewService) UpdateReview(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.UserID != actor.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the author may edit a review")
	}

	if input.Rating != nil {
		if !entity.ValidRating(*input.Rating) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = strings.TrimSpace(*input.Comment)
	}
	review.UpdatedAt = srv.now()

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review. Admins may remove any review.
func (srv *reviewService) DeleteReview(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find review")
	}
	if !actor.CanAccess(review.UserID) {
		return domainerrors.ErrForbidden.WrapMessage("only the author may delete a review")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) BookRating(ctx context.Context, bookID uuid.UUID) (*entity.BookRating, error) {
	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	rating, err := srv.reviewRepo.RatingOf(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute book rating")
	}

	return rating, nil
}
