package impl

import (
	"context"
	"log/slog"
	"strings"

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

const (
	defaultBestSellerLimit = 10
	maxBestSellerLimit     = 100
	statisticsBestSellers  = 5
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	orderRepo    repository.OrderRepository
	bookRepo     repository.BookRepository
	locationRepo repository.LocationRepository
	cfg          *config.Config
	logger       *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	BookRepo     repository.BookRepository
	LocationRepo repository.LocationRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReportService creates a new report service instance.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orderRepo:    params.OrderRepo,
		bookRepo:     params.BookRepo,
		locationRepo: params.LocationRepo,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OrdersByLocation resolves the subtree of the node with code and lists the orders of its users.
func (srv *reportService) OrdersByLocation(ctx context.Context, code string, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location code is required")
	}

	location, err := srv.locationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}

	ids, err := srv.locationRepo.FindSubtreeIDs(ctx, []uuid.UUID{location.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location subtree")
	}

	page = normalizePage(srv.cfg, page)
	orders, total, err := srv.orderRepo.FindByUserLocations(ctx, ids, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by location")
	}

	srv.log(ctx).Debug("Orders by location",
		slog.String("code", code),
		slog.Int("subtreeSize", len(ids)),
		slog.Int64("total", total),
	)

	return entity.NewPage(orders, page, total), nil
}

func (srv *reportService) OrdersByDateRange(ctx context.Context, period entity.DateRange, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if !period.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("from must be before to")
	}

	page = normalizePage(srv.cfg, page)
	orders, total, err := srv.orderRepo.FindByDateRange(ctx, period, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by date")
	}

	return entity.NewPage(orders, page, total), nil
}

// Revenue counts the same statuses as UserTotalSpent.
func (srv *reportService) Revenue(ctx context.Context, period entity.DateRange) (decimal.Decimal, error) {
	if !period.IsValid() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WrapMessage("from must be before to")
	}

	revenue, err := srv.orderRepo.SumTotalBetween(ctx, spentStatuses, period)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return revenue, nil
}

// BestSellingBooks ranks books by copies sold. A non-positive limit selects the default.
func (srv *reportService) BestSellingBooks(ctx context.Context, limit int) ([]*entity.BookSales, error) {
	if limit <= 0 {
		limit = defaultBestSellerLimit
	}
	if limit > maxBestSellerLimit {
		limit = maxBestSellerLimit
	}

	return srv.bestSellers(ctx, limit)
}

func (srv *reportService) QuantitySold(ctx context.Context, bookID uuid.UUID) (int64, error) {
	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		return 0, errors.Wrap(err, "failed to find book")
	}

	sold, err := srv.orderRepo.QuantitySold(ctx, bookID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum copies sold")
	}

	return sold, nil
}

func (srv *reportService) SalesStatistics(ctx context.Context) (*entity.SalesStatistics, error) {
	counts, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	stats := &entity.SalesStatistics{OrdersByStatus: counts}
	for _, count := range counts {
		stats.TotalOrders += count
	}

	if stats.Revenue, err = srv.orderRepo.SumTotal(ctx, spentStatuses); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	if stats.AverageOrderValue, err = srv.orderRepo.AverageTotal(ctx, spentStatuses); err != nil {
		return nil, errors.Wrap(err, "failed to average order totals")
	}
	if stats.CopiesSold, err = srv.orderRepo.TotalQuantitySold(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum copies sold")
	}
	if stats.BestSellers, err = srv.bestSellers(ctx, statisticsBestSellers); err != nil {
		return nil, err
	}

	return stats, nil
}

// bestSellers attaches the book to every ranked row. Rows of books deleted since are dropped.
func (srv *reportService) bestSellers(ctx context.Context, limit int) ([]*entity.BookSales, error) {
	sales, err := srv.orderRepo.TopBookSales(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank book sales")
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]uuid.UUID, len(sales))
	for i, row := range sales {
		ids[i] = row.BookID
	}
	books, err := srv.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load best-selling books")
	}

	byID := make(map[uuid.UUID]*entity.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	ranked := make([]*entity.BookSales, 0, len(sales))
	for _, row := range sales {
		book, ok := byID[row.BookID]
		if !ok {
			continue
		}
		row.Book = book
		ranked = append(ranked, row)
	}

	return ranked, nil
}
