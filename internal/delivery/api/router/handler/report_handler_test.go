package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReportHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockReportUsecase) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/reports/orders", h.OrdersByDateRange)
	e.GET("/reports/orders/by-location/:code", h.OrdersByLocation)
	e.GET("/reports/revenue", h.Revenue)
	e.GET("/reports/best-sellers", h.BestSellers)
	e.GET("/reports/books/:id/sold", h.QuantitySold)

	return e, reportUC
}

func TestReportHandler_Revenue(t *testing.T) {
	t.Run("plain dates include the last day", func(t *testing.T) {
		e, reportUC := setupReportHandler(t)
		period := entity.DateRange{
			From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		}

		reportUC.EXPECT().Revenue(mock.Anything, period).Return(decimal.RequireFromString("310.75"), nil)

		rec, body := doRequest(t, e, http.MethodGet, "/reports/revenue?from=2025-03-01&to=2025-03-31", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got RevenueResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.True(t, decimal.RequireFromString("310.75").Equal(got.Revenue))
	})

	t.Run("timestamps are used as given", func(t *testing.T) {
		e, reportUC := setupReportHandler(t)

		reportUC.EXPECT().
			Revenue(mock.Anything, mock.MatchedBy(func(p entity.DateRange) bool {
				return p.From.Equal(time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)) &&
					p.To.Equal(time.Date(2025, time.March, 1, 18, 0, 0, 0, time.UTC))
			})).
			Return(decimal.Zero, nil)

		rec, _ := doRequest(t, e, http.MethodGet, "/reports/revenue?from=2025-03-01T08:00:00Z&to=2025-03-01T20:00:00%2B02:00", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing from", func(t *testing.T) {
		e, _ := setupReportHandler(t)

		rec, body := doRequest(t, e, http.MethodGet, "/reports/revenue?to=2025-03-31", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("unparseable to", func(t *testing.T) {
		e, _ := setupReportHandler(t)

		rec, _ := doRequest(t, e, http.MethodGet, "/reports/revenue?from=2025-03-01&to=31/03/2025", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_OrdersByLocation(t *testing.T) {
	e, reportUC := setupReportHandler(t)
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderPending, TotalAmount: decimal.NewFromInt(12)}

	reportUC.EXPECT().
		OrdersByLocation(mock.Anything, "01", entity.PageRequest{Page: 2, Size: 5}).
		Return(entity.NewPage([]*entity.Order{order}, entity.PageRequest{Page: 2, Size: 5}, 11), nil)

	rec, body := doRequest(t, e, http.MethodGet, "/reports/orders/by-location/01?page=2&size=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got PageResponse[*OrderResponse]
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, int64(11), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, order.ID, got.Items[0].ID)
}

func TestReportHandler_BestSellers(t *testing.T) {
	t.Run("ranked books", func(t *testing.T) {
		e, reportUC := setupReportHandler(t)
		book := &entity.Book{ID: uuid.New(), Title: "Baho!", Author: "Roland Rugero", Price: decimal.NewFromInt(8)}

		reportUC.EXPECT().BestSellingBooks(mock.Anything, 3).Return([]*entity.BookSales{{BookID: book.ID, Book: book, QuantitySold: 7, Revenue: decimal.NewFromInt(56)}}, nil)

		rec, body := doRequest(t, e, http.MethodGet, "/reports/best-sellers?limit=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []BookSalesResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Baho!", got[0].Book.Title)
		assert.Equal(t, int64(7), got[0].QuantitySold)
	})

	t.Run("bad limit", func(t *testing.T) {
		e, _ := setupReportHandler(t)

		rec, _ := doRequest(t, e, http.MethodGet, "/reports/best-sellers?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_QuantitySold_UnknownBook(t *testing.T) {
	e, reportUC := setupReportHandler(t)
	id := uuid.New()

	reportUC.EXPECT().QuantitySold(mock.Anything, id).Return(int64(0), domainerrors.ErrBookNotFound)

	rec, body := doRequest(t, e, http.MethodGet, "/reports/books/"+id.String()+"/sold", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", body.Error.Code)
}
