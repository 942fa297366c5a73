package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/api/response"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandler serves book reviews and ratings.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

type createReviewRequest struct {
	BookID  uuid.UUID `json:"bookId" validate:"required"`
	Rating  int       `json:"rating" validate:"min=1,max=5"`
	Comment string    `json:"comment" validate:"max=2000"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// CreateReview records the caller's review of a book
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		BookID:  req.BookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toReviewResponse(review))
}

// ListBookReviews returns the reviews of one book
func (h *ReviewHandler) ListBookReviews(c echo.Context) error {
	bookID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListBookReviews(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(reviews, toReviewResponse))
}

// BookRating returns the average rating of one book
func (h *ReviewHandler) BookRating(c echo.Context) error {
	bookID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	rating, err := h.reviewUC.BookRating(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RatingResponse{BookID: rating.BookID, Average: rating.Average, Count: rating.Count})
}

// UpdateReview lets the author change their rating or comment
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), actor, id, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// DeleteReview removes a review; allowed for its author and admins
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
