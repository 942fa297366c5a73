package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment. The unique index on order_id allows one payment per order.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Omit("Order", "User").Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByUser returns the payments of a user, newest first.
func (repo *paymentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("payment_date DESC, id").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, m := range paymentModels {
		payments = append(payments, toPaymentDomain(m))
	}

	return payments, nil
}

// UpdateStatus persists the status and payment date of payment while it is still in from.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, payment *entity.Payment, from entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND status = ?", payment.ID, string(from)).
		Updates(map[string]any{
			"status":       string(payment.Status),
			"payment_date": payment.PaymentDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidStatusTransition.WrapMessage("payment is no longer " + string(from))
	}

	return nil
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:          data.ID,
		OrderID:     data.OrderID,
		UserID:      data.UserID,
		Method:      entity.PaymentMethod(data.Method),
		Amount:      data.Amount,
		Status:      entity.PaymentStatus(data.Status),
		PaymentDate: data.PaymentDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		UserID:      data.UserID,
		Method:      string(data.Method),
		Amount:      data.Amount,
		Status:      string(data.Status),
		PaymentDate: data.PaymentDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
