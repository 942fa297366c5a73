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

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create persists a new book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(bookM).Error; err != nil {
		return bookWriteError(err, "failed to create book")
	}

	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func bookWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrBookAlreadyExists.WrapMessage("title and author already exist")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive and stock non-negative")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// FindByID retrieves a book with its category preloaded.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID")
	}

	return toBookDomain(&bookM), nil
}

// FindByIDs retrieves the books with the given ids.
func (repo *bookRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error) {
	if len(ids) == 0 {
		return []*entity.Book{}, nil
	}

	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find books by IDs")
	}

	return toBookDomains(bookModels), nil
}

// Search returns one page of the books matching filter together with the total count.
func (repo *bookRepository) Search(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) ([]*entity.Book, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Keyword != "" {
			pattern := "%" + escapeLike(filter.Keyword) + "%"
			db = db.Where("title ILIKE ? OR author ILIKE ?", pattern, pattern)
		}
		if filter.Author != "" {
			db = db.Where("author ILIKE ?", "%"+escapeLike(filter.Author)+"%")
		}
		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.InStockOnly {
			db = db.Where("stock_quantity > 0")
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.BookModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count books")
	}

	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Scopes(scope, paginate(page)).
		Order("title, author").
		Find(&bookModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search books")
	}

	return toBookDomains(bookModels), total, nil
}

// Update overwrites the descriptive fields, price and stock of a book.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{ID: book.ID}).
		Select("title", "author", "category_id", "price", "stock_quantity", "cover_image", "file_url").
		Updates(fromBookDomain(book))
	if result.Error != nil {
		return bookWriteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	return nil
}

// Delete removes a book.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBookInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	return nil
}

// SetStock overwrites the stock quantity of a book.
func (repo *bookRepository) SetStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		return bookWriteError(result.Error, "failed to set stock")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	return nil
}

// DecreaseStock removes quantity copies in a single conditional UPDATE so concurrent orders cannot oversell.
func (repo *bookRepository) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrease stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: either the book is gone or there are not enough copies.
	var exists int64
	if err := repo.db.WithContext(ctx).Model(&model.BookModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return errors.Wrap(err, "failed to check book existence")
	}
	if exists == 0 {
		return domainerrors.ErrBookNotFound
	}

	return domainerrors.ErrInsufficientStock
}

// IncreaseStock returns quantity copies to stock.
func (repo *bookRepository) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increase stock")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	return nil
}

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:            data.ID,
		Title:         data.Title,
		Author:        data.Author,
		CategoryID:    data.CategoryID,
		Category:      toCategoryDomain(data.Category),
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CoverImage:    data.CoverImage,
		FileURL:       data.FileURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toBookDomains(models []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(models))
	for _, m := range models {
		books = append(books, toBookDomain(m))
	}

	return books
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	return &model.BookModel{
		ID:            data.ID,
		Title:         data.Title,
		Author:        data.Author,
		CategoryID:    data.CategoryID,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CoverImage:    data.CoverImage,
		FileURL:       data.FileURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
