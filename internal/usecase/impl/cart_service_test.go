package impl

import (
	"context"
	"testing"

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

type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartRepository
	bookRepo *mockRepo.MockBookRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	bookRepo := mockRepo.NewMockBookRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		BookRepo: bookRepo,
		Logger:   newDiscardLogger(),
	})

	return cartServiceFixtures{service: service, cartRepo: cartRepo, bookRepo: bookRepo}
}

func TestCartService_AddItem_Merges(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	book := newBook("Inyenzi", "5.00", 10)

	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(_ context.Context, item *entity.CartItem) {
			// The store already held two copies.
			item.Quantity += 2
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, userID, book.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.Same(t, book, item.Book)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_ForeignItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	item := &entity.CartItem{ID: uuid.New(), UserID: uuid.New(), Quantity: 1}

	fx.cartRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil).Twice()

	_, err := fx.service.UpdateQuantity(ctx, uuid.New(), item.ID, 4)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	err = fx.service.RemoveItem(ctx, uuid.New(), item.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_Summary(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{UserID: userID, Quantity: 2, Book: newBook("A", "10.00", 5)},
		{UserID: userID, Quantity: 1, Book: newBook("B", "2.50", 5)},
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)

	summary, err := fx.service.Summary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalItems)
	assert.True(t, decimal.RequireFromString("22.50").Equal(summary.TotalPrice))
}
