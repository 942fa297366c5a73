package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order and its details in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for _, detail := range order.Details {
		if detail.ID == uuid.Nil {
			detail.ID = uuid.New()
		}
		detail.OrderID = order.ID
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("User").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user or book")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantities must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its details preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser returns one page of a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Order, int64, error) {
	return repo.list(ctx, where("orders.user_id = ?", userID), page)
}

// FindByStatus returns one page of the orders in status, newest first.
func (repo *orderRepository) FindByStatus(ctx context.Context, status entity.OrderStatus, page entity.PageRequest) ([]*entity.Order, int64, error) {
	return repo.list(ctx, where("orders.status = ?", status.String()), page)
}

// FindByUserLocations joins orders to their users and keeps those attached to any of locationIDs.
func (repo *orderRepository) FindByUserLocations(ctx context.Context, locationIDs []uuid.UUID, page entity.PageRequest) ([]*entity.Order, int64, error) {
	if len(locationIDs) == 0 {
		return []*entity.Order{}, 0, nil
	}

	return repo.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN users ON users.id = orders.user_id").
			Where("users.location_id IN ?", locationIDs)
	}, page)
}

// FindByDateRange returns one page of the orders dated within period, newest first.
func (repo *orderRepository) FindByDateRange(ctx context.Context, period entity.DateRange, page entity.PageRequest) ([]*entity.Order, int64, error) {
	return repo.list(ctx, where("orders.order_date >= ? AND orders.order_date < ?", period.From, period.To), page)
}

func where(query string, args ...any) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

func (repo *orderRepository) list(ctx context.Context, filter func(*gorm.DB) *gorm.DB, page entity.PageRequest) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Scopes(filter, paginate(page)).
		Order("orders.created_at DESC, orders.id").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, total, nil
}

// UpdateStatus persists the status and order date of order. The status guard makes
// concurrent transitions from the same state race for one row; only the first wins.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, from.String()).
		Updates(map[string]any{
			"status":     order.Status.String(),
			"order_date": order.OrderDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidStatusTransition.WrapMessage("order is no longer " + from.String())
	}

	return nil
}

// SumTotalByUser returns the sum of the totals of a user's orders in any of statuses.
func (repo *orderRepository) SumTotalByUser(ctx context.Context, userID uuid.UUID, statuses []entity.OrderStatus) (decimal.Decimal, error) {
	return repo.sumTotal(ctx, where("user_id = ? AND status IN ?", userID, statusNames(statuses)))
}

// SumTotalBetween returns the sum of the totals of the orders in any of statuses dated within period.
func (repo *orderRepository) SumTotalBetween(ctx context.Context, statuses []entity.OrderStatus, period entity.DateRange) (decimal.Decimal, error) {
	return repo.sumTotal(ctx, where("status IN ? AND order_date >= ? AND order_date < ?", statusNames(statuses), period.From, period.To))
}

// SumTotal returns the sum of the totals of all orders in any of statuses.
func (repo *orderRepository) SumTotal(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error) {
	return repo.sumTotal(ctx, where("status IN ?", statusNames(statuses)))
}

func (repo *orderRepository) sumTotal(ctx context.Context, filter func(*gorm.DB) *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("SUM(total_amount) AS total").
		Scopes(filter).
		Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}

	return row.Total.Decimal, nil
}

// AverageTotal returns the mean total of the orders in any of statuses, rounded to cents.
func (repo *orderRepository) AverageTotal(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error) {
	var row struct {
		Average decimal.NullDecimal
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("ROUND(AVG(total_amount), 2) AS average").
		Where("status IN ?", statusNames(statuses)).
		Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to average order totals")
	}
	if !row.Average.Valid {
		return decimal.Zero, nil
	}

	return row.Average.Decimal, nil
}

// CountByStatus returns the number of orders per status.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// soldLines restricts order_details to the lines of orders that were not cancelled.
func (repo *orderRepository) soldLines(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderDetailModel{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("orders.status <> ?", entity.OrderCancelled.String())
}

// TopBookSales groups the sold lines by book, most copies first. Ties go to the higher revenue.
func (repo *orderRepository) TopBookSales(ctx context.Context, limit int) ([]*entity.BookSales, error) {
	var rows []struct {
		BookID       uuid.UUID
		QuantitySold int64
		Revenue      decimal.Decimal
	}
	if err := repo.soldLines(ctx).
		Select("order_details.book_id, SUM(order_details.quantity) AS quantity_sold, SUM(order_details.quantity * order_details.price) AS revenue").
		Group("order_details.book_id").
		Order("quantity_sold DESC, revenue DESC, order_details.book_id").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank book sales")
	}

	sales := make([]*entity.BookSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &entity.BookSales{BookID: row.BookID, QuantitySold: row.QuantitySold, Revenue: row.Revenue})
	}

	return sales, nil
}

// QuantitySold returns the copies of a book sold across all orders that were not cancelled.
func (repo *orderRepository) QuantitySold(ctx context.Context, bookID uuid.UUID) (int64, error) {
	var sold int64
	if err := repo.soldLines(ctx).
		Select("COALESCE(SUM(order_details.quantity), 0)").
		Where("order_details.book_id = ?", bookID).
		Scan(&sold).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum copies sold")
	}

	return sold, nil
}

// TotalQuantitySold returns the copies sold across all orders that were not cancelled.
func (repo *orderRepository) TotalQuantitySold(ctx context.Context) (int64, error) {
	var sold int64
	if err := repo.soldLines(ctx).
		Select("COALESCE(SUM(order_details.quantity), 0)").
		Scan(&sold).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum copies sold")
	}

	return sold, nil
}

func statusNames(statuses []entity.OrderStatus) []string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = status.String()
	}

	return names
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	details := make([]*entity.OrderDetail, 0, len(data.Details))
	for _, d := range data.Details {
		details = append(details, &entity.OrderDetail{
			ID:       d.ID,
			OrderID:  d.OrderID,
			BookID:   d.BookID,
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		OrderDate:   data.OrderDate,
		Status:      entity.OrderStatus(data.Status),
		TotalAmount: data.TotalAmount,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	details := make([]*model.OrderDetailModel, 0, len(data.Details))
	for _, d := range data.Details {
		details = append(details, &model.OrderDetailModel{
			ID:       d.ID,
			OrderID:  d.OrderID,
			BookID:   d.BookID,
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		OrderDate:   data.OrderDate,
		Status:      data.Status.String(),
		TotalAmount: data.TotalAmount,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
