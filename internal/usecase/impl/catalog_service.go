package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bookstore/config"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	now          func() time.Time
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}
	if err := checkLength("category name", name, entity.MaxCategoryNameLength); err != nil {
		return nil, err
	}

	now := srv.now()
	category := &entity.Category{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("name", name))

	return category, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}
	if err := checkLength("category name", name, entity.MaxCategoryNameLength); err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}
	category.Name = name
	category.UpdatedAt = srv.now()

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category no book refers to. The foreign key still
// rejects a book added after the check.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	hasBooks, err := srv.HasBooks(ctx, id)
	if err != nil {
		return err
	}
	if hasBooks {
		return domainerrors.ErrCategoryInUse.WrapMessage("category still has books")
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}

// HasBooks reports whether any book belongs to the category.
func (srv *categoryService) HasBooks(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		return false, errors.Wrap(err, "failed to find category")
	}

	hasBooks, err := srv.categoryRepo.HasBooks(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check category books")
	}

	return hasBooks, nil
}

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
	cfg          *config.Config
	now          func() time.Time
	logger       *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo     repository.BookRepository
	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBookService creates a new book service instance.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo:     params.BookRepo,
		categoryRepo: params.CategoryRepo,
		cfg:          params.Config,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBook adds a title to the catalog. The category must exist.
func (srv *bookService) CreateBook(ctx context.Context, input usecase.CreateBookInput) (*entity.Book, error) {
	now := srv.now()
	book := &entity.Book{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(input.Title),
		Author:        strings.TrimSpace(input.Author),
		CategoryID:    input.CategoryID,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CoverImage:    strings.TrimSpace(input.CoverImage),
		FileURL:       strings.TrimSpace(input.FileURL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := validateBook(book); err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}
	book.Category = category

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.String("bookID", book.ID.String()), slog.String("title", book.Title))

	return book, nil
}

func (srv *bookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

func (srv *bookService) SearchBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (*entity.Page[*entity.Book], error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("minimum price exceeds maximum price")
	}

	page = normalizePage(srv.cfg, page)
	books, total, err := srv.bookRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return entity.NewPage(books, page, total), nil
}

// UpdateBook changes the descriptive fields of a book. Stock is managed separately.
func (srv *bookService) UpdateBook(ctx context.Context, id uuid.UUID, input usecase.UpdateBookInput) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	if input.Title != nil {
		book.Title = strings.TrimSpace(*input.Title)
	}
	if input.Author != nil {
		book.Author = strings.TrimSpace(*input.Author)
	}
	if input.Price != nil {
		book.Price = *input.Price
	}
	if input.CoverImage != nil {
		book.CoverImage = strings.TrimSpace(*input.CoverImage)
	}
	if input.FileURL != nil {
		book.FileURL = strings.TrimSpace(*input.FileURL)
	}
	if input.CategoryID != nil && *input.CategoryID != book.CategoryID {
		category, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find category")
		}
		book.CategoryID = category.ID
		book.Category = category
	}
	if err := validateBook(book); err != nil {
		return nil, err
	}

	book.UpdatedAt = srv.now()
	if err := srv.bookRepo.Update(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	return book, nil
}

func (srv *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete book")
	}

	srv.log(ctx).Info("Book deleted", slog.String("bookID", id.String()))

	return nil
}

// SetStock overwrites the stock of a book.
func (srv *bookService) SetStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock cannot be negative")
	}

	if err := srv.bookRepo.SetStock(ctx, id, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to set stock")
	}

	return srv.GetBook(ctx, id)
}

// DecreaseStock removes quantity copies from stock, failing when fewer are available.
func (srv *bookService) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	if err := srv.bookRepo.DecreaseStock(ctx, id, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to decrease stock")
	}

	return srv.GetBook(ctx, id)
}

func validateBook(book *entity.Book) error {
	switch {
	case book.Title == "":
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	case book.Author == "":
		return domainerrors.ErrValidationFailed.WrapMessage("author is required")
	case !book.Price.IsPositive():
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	case book.StockQuantity < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("stock cannot be negative")
	case book.CategoryID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}

	for _, field := range []struct {
		name  string
		value string
		limit int
	}{
		{"title", book.Title, entity.MaxBookTitleLength},
		{"author", book.Author, entity.MaxBookAuthorLength},
		{"cover image", book.CoverImage, entity.MaxBookURLLength},
		{"file url", book.FileURL, entity.MaxBookURLLength},
	} {
		if err := checkLength(field.name, field.value, field.limit); err != nil {
			return err
		}
	}

	return nil
}
