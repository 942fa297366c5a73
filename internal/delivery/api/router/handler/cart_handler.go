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

// CartHandler serves the caller's shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

type addCartItemRequest struct {
	BookID   uuid.UUID `json:"bookId" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// GetCart returns the caller's cart with item and price totals
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	summary, err := h.cartUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryResponse(summary))
}

// ListItems returns the caller's cart lines
func (h *CartHandler) ListItems(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.cartUC.ListItems(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(items, toCartItemResponse))
}

// AddItem puts a book in the cart, merging with an existing line for the same book
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, req.BookID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toCartItemResponse(item))
}

// UpdateItem sets the quantity of one cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemResponse(item))
}

// RemoveItem deletes one cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ClearCart empties the caller's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
