package handler

import (
	"context"
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/api/response"
	"bookstore/internal/domain/entity"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentHandler serves payments for orders.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

type createPaymentRequest struct {
	OrderID uuid.UUID            `json:"orderId" validate:"required"`
	Method  entity.PaymentMethod `json:"method" validate:"required,payment_method"`
}

// CreatePayment records a pending payment for one of the caller's orders
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentUC.CreatePayment(c.Request().Context(), actor, usecase.CreatePaymentInput{
		OrderID: req.OrderID,
		Method:  req.Method,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toPaymentResponse(payment))
}

// ListMyPayments returns the caller's payments
func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentUC.ListUserPayments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(payments, toPaymentResponse))
}

// GetPayment returns one of the caller's payments; admins may read any payment
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, err := callerActor(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentResponse(payment))
}

// ProcessPayment marks a pending payment successful
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	return h.settle(c, h.paymentUC.ProcessPayment)
}

// FailPayment marks a pending payment failed
func (h *PaymentHandler) FailPayment(c echo.Context) error {
	return h.settle(c, h.paymentUC.FailPayment)
}

func (h *PaymentHandler) settle(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	payment, err := fn(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentResponse(payment))
}
