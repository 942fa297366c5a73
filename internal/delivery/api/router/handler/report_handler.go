package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/delivery/api/response"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// ReportHandler serves the sales reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

type BookSalesResponse struct {
	Book         *BookResponse   `json:"book"`
	QuantitySold int64           `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type RevenueResponse struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Revenue decimal.Decimal `json:"revenue"`
}

type QuantitySoldResponse struct {
	BookID       uuid.UUID `json:"bookId"`
	QuantitySold int64     `json:"quantitySold"`
}

type SalesStatisticsResponse struct {
	TotalOrders       int64                        `json:"totalOrders"`
	OrdersByStatus    map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	Revenue           decimal.Decimal              `json:"revenue"`
	AverageOrderValue decimal.Decimal              `json:"averageOrderValue"`
	CopiesSold        int64                        `json:"copiesSold"`
	BestSellers       []*BookSalesResponse         `json:"bestSellers"`
}

func toBookSalesResponse(sales *entity.BookSales) *BookSalesResponse {
	return &BookSalesResponse{
		Book:         toBookResponse(sales.Book),
		QuantitySold: sales.QuantitySold,
		Revenue:      sales.Revenue,
	}
}

// OrdersByLocation returns a page of the orders placed from anywhere below a location
func (h *ReportHandler) OrdersByLocation(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.reportUC.OrdersByLocation(c.Request().Context(), c.Param("code"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse))
}

// OrdersByDateRange returns a page of the orders dated between from and to
func (h *ReportHandler) OrdersByDateRange(c echo.Context) error {
	period, err := dateRangeQuery(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.reportUC.OrdersByDateRange(c.Request().Context(), period, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse))
}

// Revenue returns the takings of delivered and completed orders between from and to
func (h *ReportHandler) Revenue(c echo.Context) error {
	period, err := dateRangeQuery(c)
	if err != nil {
		return err
	}

	revenue, err := h.reportUC.Revenue(c.Request().Context(), period)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RevenueResponse{From: period.From, To: period.To, Revenue: revenue})
}

// BestSellers ranks books by copies sold
func (h *ReportHandler) BestSellers(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid limit parameter")
		}
		limit = value
	}

	sales, err := h.reportUC.BestSellingBooks(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(sales, toBookSalesResponse))
}

// QuantitySold returns the copies of one book sold
func (h *ReportHandler) QuantitySold(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	sold, err := h.reportUC.QuantitySold(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, QuantitySoldResponse{BookID: id, QuantitySold: sold})
}

// SalesStatistics summarises orders, revenue and best sellers
func (h *ReportHandler) SalesStatistics(c echo.Context) error {
	stats, err := h.reportUC.SalesStatistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SalesStatisticsResponse{
		TotalOrders:       stats.TotalOrders,
		OrdersByStatus:    stats.OrdersByStatus,
		Revenue:           stats.Revenue,
		AverageOrderValue: stats.AverageOrderValue,
		CopiesSold:        stats.CopiesSold,
		BestSellers:       mapSlice(stats.BestSellers, toBookSalesResponse),
	})
}

// dateRangeQuery reads the required from and to query parameters as RFC 3339 timestamps or
// plain dates. A plain to date includes the whole day.
func dateRangeQuery(c echo.Context) (entity.DateRange, error) {
	from, err := parseQueryTime(c, "from", false)
	if err != nil {
		return entity.DateRange{}, err
	}
	to, err := parseQueryTime(c, "to", true)
	if err != nil {
		return entity.DateRange{}, err
	}

	return entity.DateRange{From: from, To: to}, nil
}

func parseQueryTime(c echo.Context, name string, endOfDay bool) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, domainerrors.ErrValidationFailed.WrapMessage(name + " is required")
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1)
	}

	return day, nil
}
