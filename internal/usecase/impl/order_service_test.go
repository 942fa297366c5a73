package impl

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockRepo "bookstore/internal/mocks/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{service: service, txManager: txManager, orderRepo: orderRepo}
}

func newBook(title string, price string, stock int) *entity.Book {
	return &entity.Book{
		ID:            uuid.New(),
		Title:         title,
		Author:        "Scholastique Mukasonga",
		CategoryID:    uuid.New(),
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestOrderService_PlaceOrder_Items(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	novel := newBook("Our Lady of the Nile", "12.50", 10)
	memoir := newBook("Cockroaches", "8.00", 3)
	tx := expectTransaction(t, fx.txManager)

	tx.books.EXPECT().FindByIDs(ctx, []uuid.UUID{novel.ID, memoir.ID}).Return([]*entity.Book{memoir, novel}, nil)
	tx.books.EXPECT().DecreaseStock(ctx, novel.ID, 3).Return(nil)
	tx.books.EXPECT().DecreaseStock(ctx, memoir.ID, 1).Return(nil)
	tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{
		{BookID: novel.ID, Quantity: 2},
		{BookID: memoir.ID, Quantity: 1},
		{BookID: novel.ID, Quantity: 1},
	}})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, userID, order.UserID)
	require.Len(t, order.Details, 2)
	assert.Equal(t, 3, order.Details[0].Quantity)
	assert.True(t, decimal.RequireFromString("45.50").Equal(order.TotalAmount), order.TotalAmount.String())
	for _, detail := range order.Details {
		assert.Equal(t, order.ID, detail.OrderID)
	}
}

func TestOrderService_PlaceOrder_FromCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	book := newBook("Baking Cakes in Kigali", "20.00", 5)
	tx := expectTransaction(t, fx.txManager)

	tx.carts.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{{UserID: userID, BookID: book.ID, Quantity: 2}}, nil)
	tx.books.EXPECT().FindByIDs(ctx, []uuid.UUID{book.ID}).Return([]*entity.Book{book}, nil)
	tx.books.EXPECT().DecreaseStock(ctx, book.ID, 2).Return(nil)
	tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	tx.carts.EXPECT().Clear(ctx, userID).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(order.TotalAmount))
}

func TestOrderService_PlaceOrder_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		tx := expectTransaction(t, fx.txManager)

		tx.carts.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

		_, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("insufficient stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		book := newBook("Inyenzi", "5.00", 1)
		tx := expectTransaction(t, fx.txManager)

		tx.books.EXPECT().FindByIDs(ctx, []uuid.UUID{book.ID}).Return([]*entity.Book{book}, nil)
		tx.books.EXPECT().DecreaseStock(ctx, book.ID, 2).Return(domainerrors.ErrInsufficientStock)

		_, err := fx.service.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{BookID: book.ID, Quantity: 2}}})

		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
		tx.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown book", func(t *testing.T) {
		fx := createTestOrderService(t)
		missing := uuid.New()
		tx := expectTransaction(t, fx.txManager)

		tx.books.EXPECT().FindByIDs(ctx, []uuid.UUID{missing}).Return([]*entity.Book{}, nil)

		_, err := fx.service.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{BookID: missing, Quantity: 1}}})

		assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
	})

	t.Run("non positive quantity", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{BookID: uuid.New(), Quantity: 0}}})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		allowed bool
	}{
		{"pending to processing", entity.OrderPending, entity.OrderProcessing, true},
		{"processing to shipped", entity.OrderProcessing, entity.OrderShipped, true},
		{"shipped to delivered", entity.OrderShipped, entity.OrderDelivered, true},
		{"delivered to completed", entity.OrderDelivered, entity.OrderCompleted, true},
		{"pending to shipped", entity.OrderPending, entity.OrderShipped, false},
		{"shipped to cancelled", entity.OrderShipped, entity.OrderCancelled, false},
		{"completed is terminal", entity.OrderCompleted, entity.OrderPending, false},
		{"cancelled is terminal", entity.OrderCancelled, entity.OrderProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			order := &entity.Order{ID: uuid.New(), Status: tt.from, OrderDate: time.Unix(0, 0)}
			tx := expectTransaction(t, fx.txManager)

			tx.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			if tt.allowed {
				tx.orders.EXPECT().UpdateStatus(ctx, order, tt.from).Return(nil)
			}

			updated, err := fx.service.UpdateStatus(ctx, order.ID, tt.to)

			if !tt.allowed {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			if tt.to == entity.OrderDelivered || tt.to == entity.OrderCompleted {
				assert.True(t, updated.OrderDate.After(time.Unix(0, 0)))
			}
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	bookID := uuid.New()

	t.Run("owner cancels and stock returns", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{
			ID:      uuid.New(),
			UserID:  owner,
			Status:  entity.OrderPending,
			Details: []*entity.OrderDetail{{BookID: bookID, Quantity: 2, Price: decimal.NewFromInt(5)}},
		}
		tx := expectTransaction(t, fx.txManager)

		tx.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		tx.orders.EXPECT().UpdateStatus(ctx, order, entity.OrderPending).Return(nil)
		tx.books.EXPECT().IncreaseStock(ctx, bookID, 2).Return(nil)

		cancelled, err := fx.service.CancelOrder(ctx, usecase.Actor{UserID: owner, Roles: entity.Roles{entity.RoleCustomer}}, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, cancelled.Status)
	})

	t.Run("concurrent cancel does not restock twice", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{
			ID:      uuid.New(),
			UserID:  owner,
			Status:  entity.OrderPending,
			Details: []*entity.OrderDetail{{BookID: bookID, Quantity: 2, Price: decimal.NewFromInt(5)}},
		}
		tx := expectTransaction(t, fx.txManager)

		tx.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		tx.orders.EXPECT().
			UpdateStatus(ctx, order, entity.OrderPending).
			Return(domainerrors.ErrInvalidStatusTransition.WrapMessage("order is no longer PENDING"))

		_, err := fx.service.CancelOrder(ctx, usecase.Actor{UserID: owner, Roles: entity.Roles{entity.RoleCustomer}}, order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition), "got %v", err)
		assert.Equal(t, entity.OrderPending, order.Status)
		tx.books.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other customer", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), UserID: owner, Status: entity.OrderPending}
		tx := expectTransaction(t, fx.txManager)

		tx.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CancelOrder(ctx, usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}, order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_GetOrder_Access(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Twice()

	_, err := fx.service.GetOrder(ctx, usecase.Actor{UserID: uuid.New()}, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	got, err := fx.service.GetOrder(ctx, usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}, order.ID)
	require.NoError(t, err)
	assert.Same(t, order, got)
}

func TestOrderService_UserTotalSpent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().
		SumTotalByUser(ctx, userID, []entity.OrderStatus{entity.OrderDelivered, entity.OrderCompleted}).
		Return(decimal.NewFromInt(25), nil)

	total, err := fx.service.UserTotalSpent(ctx, userID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(total))
}
