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

type reportServiceFixtures struct {
	service      usecase.ReportUsecase
	orderRepo    *mockRepo.MockOrderRepository
	bookRepo     *mockRepo.MockBookRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewReportService(ReportServiceParams{
		OrderRepo:    orderRepo,
		BookRepo:     bookRepo,
		LocationRepo: locationRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return reportServiceFixtures{service: service, orderRepo: orderRepo, bookRepo: bookRepo, locationRepo: locationRepo}
}

func januaryRange() entity.DateRange {
	return entity.DateRange{
		From: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReportService_OrdersByLocation(t *testing.T) {
	tree := buildKigali()
	ctx := context.Background()

	t.Run("province covers its whole subtree", func(t *testing.T) {
		fx := createTestReportService(t)
		subtree := []uuid.UUID{tree.province.ID, tree.district.ID, tree.otherDistrict.ID, tree.sector.ID, tree.cell.ID, tree.village.ID}
		orders := []*entity.Order{{ID: uuid.New(), Status: entity.OrderPending}}

		fx.locationRepo.EXPECT().FindByCode(ctx, "K1").Return(tree.province, nil)
		fx.locationRepo.EXPECT().FindSubtreeIDs(ctx, []uuid.UUID{tree.province.ID}).Return(subtree, nil)
		fx.orderRepo.EXPECT().
			FindByUserLocations(ctx, subtree, entity.PageRequest{Page: 0, Size: 20}).
			Return(orders, int64(1), nil)

		page, err := fx.service.OrdersByLocation(ctx, " K1 ", entity.PageRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, orders, page.Items)
	})

	t.Run("unknown location", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.locationRepo.EXPECT().FindByCode(ctx, "ZZ").Return(nil, domainerrors.ErrLocationNotFound)

		_, err := fx.service.OrdersByLocation(ctx, "ZZ", entity.PageRequest{})

		assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	})

	t.Run("empty code", func(t *testing.T) {
		fx := createTestReportService(t)

		_, err := fx.service.OrdersByLocation(ctx, "  ", entity.PageRequest{})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestReportService_DateRanges(t *testing.T) {
	ctx := context.Background()
	period := januaryRange()

	t.Run("revenue counts delivered and completed orders", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.orderRepo.EXPECT().
			SumTotalBetween(ctx, []entity.OrderStatus{entity.OrderDelivered, entity.OrderCompleted}, period).
			Return(decimal.RequireFromString("145.50"), nil)

		revenue, err := fx.service.Revenue(ctx, period)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("145.50").Equal(revenue))
	})

	t.Run("orders within range", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.orderRepo.EXPECT().FindByDateRange(ctx, period, entity.PageRequest{Page: 1, Size: 100}).Return([]*entity.Order{}, int64(0), nil)

		page, err := fx.service.OrdersByDateRange(ctx, period, entity.PageRequest{Page: 1, Size: 500})

		require.NoError(t, err)
		assert.Equal(t, 100, page.Size)
	})

	for name, bad := range map[string]entity.DateRange{
		"reversed": {From: period.To, To: period.From},
		"empty":    {From: period.From, To: period.From},
		"open end": {From: period.From},
	} {
		t.Run(name+" range is rejected", func(t *testing.T) {
			fx := createTestReportService(t)

			_, err := fx.service.Revenue(ctx, bad)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			_, err = fx.service.OrdersByDateRange(ctx, bad, entity.PageRequest{})
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestReportService_BestSellingBooks(t *testing.T) {
	ctx := context.Background()
	first := newBook("Baho!", "8.00", 3)
	second := newBook("Murambi", "11.00", 1)

	t.Run("attaches books in rank order", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.orderRepo.EXPECT().TopBookSales(ctx, defaultBestSellerLimit).Return([]*entity.BookSales{
			{BookID: first.ID, QuantitySold: 9, Revenue: decimal.NewFromInt(72)},
			{BookID: second.ID, QuantitySold: 4, Revenue: decimal.NewFromInt(44)},
		}, nil)
		// The repository returns books in its own order.
		fx.bookRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{first.ID, second.ID}).Return([]*entity.Book{second, first}, nil)

		sales, err := fx.service.BestSellingBooks(ctx, 0)

		require.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Same(t, first, sales[0].Book)
		assert.Same(t, second, sales[1].Book)
		assert.Equal(t, int64(9), sales[0].QuantitySold)
	})

	t.Run("limit is capped", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.orderRepo.EXPECT().TopBookSales(ctx, maxBestSellerLimit).Return([]*entity.BookSales{}, nil)

		sales, err := fx.service.BestSellingBooks(ctx, 10_000)

		require.NoError(t, err)
		assert.Empty(t, sales)
		fx.bookRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})
}

func TestReportService_QuantitySold(t *testing.T) {
	ctx := context.Background()
	book := newBook("Baho!", "8.00", 3)

	t.Run("known book", func(t *testing.T) {
		fx := createTestReportService(t)

		fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
		fx.orderRepo.EXPECT().QuantitySold(ctx, book.ID).Return(int64(12), nil)

		sold, err := fx.service.QuantitySold(ctx, book.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(12), sold)
	})

	t.Run("unknown book", func(t *testing.T) {
		fx := createTestReportService(t)
		id := uuid.New()

		fx.bookRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrBookNotFound)

		_, err := fx.service.QuantitySold(ctx, id)

		assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
	})
}

func TestReportService_SalesStatistics(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	book := newBook("Baho!", "8.00", 3)

	fx.orderRepo.EXPECT().CountByStatus(ctx).Return(map[entity.OrderStatus]int64{
		entity.OrderPending:   2,
		entity.OrderCompleted: 3,
		entity.OrderCancelled: 1,
	}, nil)
	fx.orderRepo.EXPECT().SumTotal(ctx, spentStatuses).Return(decimal.RequireFromString("90.00"), nil)
	fx.orderRepo.EXPECT().AverageTotal(ctx, spentStatuses).Return(decimal.RequireFromString("30.00"), nil)
	fx.orderRepo.EXPECT().TotalQuantitySold(ctx).Return(int64(11), nil)
	fx.orderRepo.EXPECT().TopBookSales(ctx, statisticsBestSellers).Return([]*entity.BookSales{{BookID: book.ID, QuantitySold: 11}}, nil)
	fx.bookRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{book.ID}).Return([]*entity.Book{book}, nil)

	stats, err := fx.service.SalesStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalOrders)
	assert.True(t, decimal.RequireFromString("90").Equal(stats.Revenue))
	assert.True(t, decimal.RequireFromString("30").Equal(stats.AverageOrderValue))
	assert.Equal(t, int64(11), stats.CopiesSold)
	require.Len(t, stats.BestSellers, 1)
	assert.Same(t, book, stats.BestSellers[0].Book)
}
