package postgres

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// AddItem upserts on the (user_id, book_id) unique index, adding to the stored quantity on conflict.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		ID:       uuid.New(),
		UserID:   item.UserID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}

	if err := repo.db.WithContext(ctx).
		Omit("User", "Book").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": time.Now(),
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookNotFound.WrapMessage("invalid book or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	// The row may predate this call, so read back what is stored.
	var stored model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ? AND book_id = ?", item.UserID, item.BookID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload cart item")
	}
	*item = *toCartItemDomain(&stored)

	return nil
}

// FindByID retrieves a cart item with its book preloaded.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// FindByUser returns the cart of a user with books preloaded, oldest first.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("added_at, id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, m := range itemModels {
		items = append(items, toCartItemDomain(m))
	}

	return items, nil
}

// UpdateQuantity overwrites the quantity of a cart item.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes one cart item.
func (repo *cartRepository) RemoveItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartItemNotFound
	}

	return nil
}

// Clear removes every item in the cart of a user. Clearing an empty cart is not an error.
func (repo *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		BookID:    data.BookID,
		Book:      toBookDomain(data.Book),
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
