package impl

import (
	"context"
	"log/slog"
	"time"

	"bookstore/config"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// spentStatuses are the statuses summed by UserTotalSpent.
var spentStatuses = []entity.OrderStatus{entity.OrderDelivered, entity.OrderCompleted}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cfg       *config.Config
	now       func() time.Time
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		cfg:       params.Config,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the requested books at their current price, takes them out of stock and
// records the order in one transaction. Without items the user's cart is checked out and cleared.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		fromCart := len(input.Items) == 0
		items := input.Items
		if fromCart {
			cartItems, err := factory.NewCartRepository().FindByUser(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to load cart")
			}
			if len(cartItems) == 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("cart is empty")
			}
			for _, cartItem := range cartItems {
				items = append(items, usecase.OrderItemInput{BookID: cartItem.BookID, Quantity: cartItem.Quantity})
			}
		}

		details, err := srv.buildDetails(ctx, factory.NewBookRepository(), mergeOrderItems(items))
		if err != nil {
			return err
		}

		now := srv.now()
		order = &entity.Order{
			ID:        uuid.New(),
			UserID:    userID,
			OrderDate: now,
			Status:    entity.OrderPending,
			Details:   details,
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, detail := range order.Details {
			detail.OrderID = order.ID
		}
		order.RecalculateTotal()

		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if fromCart {
			if err := factory.NewCartRepository().Clear(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear cart")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("total", order.TotalAmount.StringFixed(2)),
		slog.Int("lines", len(order.Details)),
	)

	return order, nil
}

// buildDetails prices each line and decreases stock. The conditional update in the store
// rejects a line when fewer copies are left.
func (srv *orderService) buildDetails(ctx context.Context, bookRepo repository.BookRepository, items []usecase.OrderItemInput) ([]*entity.OrderDetail, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.BookID)
	}

	books, err := bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered books")
	}
	byID := make(map[uuid.UUID]*entity.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	details := make([]*entity.OrderDetail, 0, len(items))
	for _, item := range items {
		book, ok := byID[item.BookID]
		if !ok {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("book " + item.BookID.String())
		}
		if err := bookRepo.DecreaseStock(ctx, book.ID, item.Quantity); err != nil {
			return nil, errors.Wrapf(err, "failed to reserve %q", book.Title)
		}
		details = append(details, &entity.OrderDetail{
			ID:       uuid.New(),
			BookID:   book.ID,
			Quantity: item.Quantity,
			Price:    book.Price,
		})
	}

	return details, nil
}

// mergeOrderItems folds repeated books into one line, keeping first-seen order.
func mergeOrderItems(items []usecase.OrderItemInput) []usecase.OrderItemInput {
	index := make(map[uuid.UUID]int, len(items))
	merged := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.BookID]; ok {
			merged[i].Quantity += item.Quantity

			continue
		}
		index[item.BookID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

// GetOrder returns an order with its details. Orders of other users are reported as not found
// unless the actor is an admin.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	page = normalizePage(srv.cfg, page)
	orders, total, err := srv.orderRepo.FindByUser(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return entity.NewPage(orders, page, total), nil
}

func (srv *orderService) ListOrdersByStatus(ctx context.Context, status entity.OrderStatus, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + status.String())
	}

	page = normalizePage(srv.cfg, page)
	orders, total, err := srv.orderRepo.FindByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return entity.NewPage(orders, page, total), nil
}

// UpdateStatus moves an order along the status table. Cancelling returns the copies to stock;
// delivery and completion stamp the order date.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + status.String())
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}

		return srv.transition(ctx, factory, order, status)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status changed", slog.String("orderID", id.String()), slog.String("status", status.String()))

	return order, nil
}

// CancelOrder cancels an order of the actor, or any order for admins.
func (srv *orderService) CancelOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		order, err = factory.NewOrderRepository().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		if !actor.CanAccess(order.UserID) {
			return domainerrors.ErrOrderNotFound
		}

		return srv.transition(ctx, factory, order, entity.OrderCancelled)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel order transaction")
	}

	srv.log(ctx).Info("Order cancelled", slog.String("orderID", id.String()))

	return order, nil
}

func (srv *orderService) transition(ctx context.Context, factory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus) error {
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WrapMessage(order.Status.String() + " -> " + next.String())
	}

	previous := order.Status
	if next == entity.OrderDelivered || next == entity.OrderCompleted {
		order.OrderDate = srv.now()
	}
	order.Status = next
	order.UpdatedAt = srv.now()

	// The guarded update claims the row before any stock moves.
	if err := factory.NewOrderRepository().UpdateStatus(ctx, order, previous); err != nil {
		order.Status = previous

		return errors.Wrap(err, "failed to update order status")
	}

	if next == entity.OrderCancelled {
		bookRepo := factory.NewBookRepository()
		for _, detail := range order.Details {
			if err := bookRepo.IncreaseStock(ctx, detail.BookID, detail.Quantity); err != nil {
				return errors.Wrap(err, "failed to restock cancelled order")
			}
		}
	}

	return nil
}

// UserTotalSpent sums the totals of the user's delivered and completed orders.
func (srv *orderService) UserTotalSpent(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := srv.orderRepo.SumTotalByUser(ctx, userID, spentStatuses)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum user orders")
	}

	return total, nil
}
