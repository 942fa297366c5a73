package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"bookstore/internal/delivery/api/response"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandler serves order placement and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type orderItemRequest struct {
	BookID   uuid.UUID `json:"bookId" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

// placeOrderRequest without items checks out the caller's cart.
type placeOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"dive"`
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,order_status"`
}

// PlaceOrder creates an order from the given items or from the caller's cart
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	// An empty body is a cart checkout.
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{BookID: item.BookID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{Items: items})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toOrderResponse(order))
}

// ListMyOrders returns the caller's orders, newest first
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse))
}

// GetOrder returns one of the caller's orders; admins may read any order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// CancelOrder cancels a pending or processing order and returns its stock
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// ListByStatus returns a page of all orders in one status
func (h *OrderHandler) ListByStatus(c echo.Context) error {
	status := entity.OrderStatus(strings.ToUpper(c.Param("status")))
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status " + c.Param("status"))
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrdersByStatus(c.Request().Context(), status, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse))
}

// UpdateStatus moves an order along its lifecycle
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}
