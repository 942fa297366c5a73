package impl

import (
	"context"
	"log/slog"
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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	now         func() time.Time
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		orderRepo:   params.OrderRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment records a pending payment of the order total. An order has at most one payment.
func (srv *paymentService) CreatePayment(ctx context.Context, actor usecase.Actor, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	if !input.Method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method " + string(input.Method))
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if order.Status == entity.OrderCancelled {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order is cancelled")
	}
	if !order.TotalAmount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order total must be positive")
	}

	now := srv.now()
	payment := &entity.Payment{
		ID:          uuid.New(),
		OrderID:     order.ID,
		UserID:      order.UserID,
		Method:      input.Method,
		Amount:      order.TotalAmount,
		Status:      entity.PaymentPending,
		PaymentDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment created", slog.String("paymentID", payment.ID.String()), slog.String("orderID", order.ID.String()))

	return payment, nil
}

func (srv *paymentService) GetPayment(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}
	if !actor.CanAccess(payment.UserID) {
		return nil, domainerrors.ErrPaymentNotFound
	}

	return payment, nil
}

func (srv *paymentService) ListUserPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ProcessPayment settles a pending payment and starts processing a pending order.
func (srv *paymentService) ProcessPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return srv.settle(ctx, id, entity.PaymentSuccessful)
}

// FailPayment marks a pending payment failed. The order is left as it is, so a payment
// of a cancelled order can still be closed this way.
func (srv *paymentService) FailPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return srv.settle(ctx, id, entity.PaymentFailed)
}

func (srv *paymentService) settle(ctx context.Context, id uuid.UUID, next entity.PaymentStatus) (*entity.Payment, error) {
	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		paymentRepo := factory.NewPaymentRepository()

		var err error
		payment, err = paymentRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find payment")
		}
		previous := payment.Status
		if !previous.CanTransitionTo(next) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage(string(previous) + " -> " + string(next))
		}

		var order *entity.Order
		orderRepo := factory.NewOrderRepository()
		if next == entity.PaymentSuccessful {
			order, err = orderRepo.FindByID(ctx, payment.OrderID)
			if err != nil {
				return errors.Wrap(err, "failed to find paid order")
			}
			if order.Status == entity.OrderCancelled {
				return domainerrors.ErrInvalidStatusTransition.WrapMessage("order " + order.ID.String() + " is cancelled")
			}
		}

		now := srv.now()
		payment.Status = next
		payment.PaymentDate = now
		payment.UpdatedAt = now
		if err := paymentRepo.UpdateStatus(ctx, payment, previous); err != nil {
			payment.Status = previous

			return errors.Wrap(err, "failed to update payment status")
		}

		if order == nil || order.Status != entity.OrderPending {
			return nil
		}
		order.Status = entity.OrderProcessing
		order.UpdatedAt = now

		// A cancel committed since FindByID fails the guard and rolls the payment back.
		return errors.Wrap(orderRepo.UpdateStatus(ctx, order, entity.OrderPending), "failed to start order processing")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute payment settlement transaction")
	}

	srv.log(ctx).Info("Payment settled", slog.String("paymentID", id.String()), slog.String("status", string(next)))

	return payment, nil
}
