package impl

import (
	"context"
	"strings"
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

type bookServiceFixtures struct {
	service      usecase.BookUsecase
	bookRepo     *mockRepo.MockBookRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewBookService(BookServiceParams{
		BookRepo:     bookRepo,
		CategoryRepo: categoryRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return bookServiceFixtures{service: service, bookRepo: bookRepo, categoryRepo: categoryRepo}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(CategoryServiceParams{CategoryRepo: categoryRepo, Logger: newDiscardLogger()})
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, "   ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = service.CreateCategory(ctx, strings.Repeat("c", entity.MaxCategoryNameLength+1))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(domainerrors.ErrCategoryAlreadyExists).
		Once()

	_, err = service.CreateCategory(ctx, "Fiction")
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))

	categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil).Once()

	category, err := service.CreateCategory(ctx, " Poetry ")
	require.NoError(t, err)
	assert.Equal(t, "Poetry", category.Name)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Poetry"}

	newService := func(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)

		return NewCategoryService(CategoryServiceParams{CategoryRepo: categoryRepo, Logger: newDiscardLogger()}), categoryRepo
	}

	t.Run("refused while books remain", func(t *testing.T) {
		service, categoryRepo := newService(t)

		categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		categoryRepo.EXPECT().HasBooks(ctx, category.ID).Return(true, nil)

		err := service.DeleteCategory(ctx, category.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse), "got %v", err)
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("empty category", func(t *testing.T) {
		service, categoryRepo := newService(t)

		categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		categoryRepo.EXPECT().HasBooks(ctx, category.ID).Return(false, nil)
		categoryRepo.EXPECT().Delete(ctx, category.ID).Return(nil)

		require.NoError(t, service.DeleteCategory(ctx, category.ID))
	})

	t.Run("book added after the check", func(t *testing.T) {
		service, categoryRepo := newService(t)

		categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		categoryRepo.EXPECT().HasBooks(ctx, category.ID).Return(false, nil)
		categoryRepo.EXPECT().Delete(ctx, category.ID).Return(domainerrors.ErrCategoryInUse)

		err := service.DeleteCategory(ctx, category.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse))
	})

	t.Run("unknown category", func(t *testing.T) {
		service, categoryRepo := newService(t)
		id := uuid.New()

		categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrCategoryNotFound)

		_, err := service.HasBooks(ctx, id)

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestBookService_CreateBook(t *testing.T) {
	categoryID := uuid.New()
	valid := usecase.CreateBookInput{
		Title:         "Our Lady of the Nile",
		Author:        "Scholastique Mukasonga",
		CategoryID:    categoryID,
		Price:         decimal.RequireFromString("12.50"),
		StockQuantity: 4,
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestBookService(t)
		ctx := context.Background()
		category := &entity.Category{ID: categoryID, Name: "Fiction"}

		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(category, nil)
		fx.bookRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Book")).Return(nil)

		book, err := fx.service.CreateBook(ctx, valid)

		require.NoError(t, err)
		assert.Same(t, category, book.Category)
		assert.Equal(t, 4, book.StockQuantity)
	})

	t.Run("invalid fields", func(t *testing.T) {
		for name, mutate := range map[string]func(*usecase.CreateBookInput){
			"zero price":     func(in *usecase.CreateBookInput) { in.Price = decimal.Zero },
			"negative stock": func(in *usecase.CreateBookInput) { in.StockQuantity = -1 },
			"missing title":  func(in *usecase.CreateBookInput) { in.Title = " " },
			"no category":    func(in *usecase.CreateBookInput) { in.CategoryID = uuid.Nil },
			"long title":     func(in *usecase.CreateBookInput) { in.Title = strings.Repeat("t", entity.MaxBookTitleLength+1) },
			"long file url":  func(in *usecase.CreateBookInput) { in.FileURL = "https://files.rw/" + strings.Repeat("f", entity.MaxBookURLLength) },
		} {
			t.Run(name, func(t *testing.T) {
				fx := createTestBookService(t)
				input := valid
				mutate(&input)

				_, err := fx.service.CreateBook(context.Background(), input)

				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
			})
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestBookService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, domainerrors.ErrCategoryNotFound)

		_, err := fx.service.CreateBook(ctx, valid)

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()
	book := newBook("Inyenzi", "5.00", 2)
	price := decimal.RequireFromString("7.25")
	title := "Cockroaches"

	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	fx.bookRepo.EXPECT().Update(ctx, book).Return(nil)

	updated, err := fx.service.UpdateBook(ctx, book.ID, usecase.UpdateBookInput{Title: &title, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, "Cockroaches", updated.Title)
	assert.True(t, price.Equal(updated.Price))
}

func TestBookService_SearchBooks_PriceRange(t *testing.T) {
	fx := createTestBookService(t)
	low, high := decimal.NewFromInt(10), decimal.NewFromInt(5)

	_, err := fx.service.SearchBooks(context.Background(), entity.BookFilter{MinPrice: &low, MaxPrice: &high}, entity.PageRequest{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_Stock(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()
	book := newBook("Inyenzi", "5.00", 2)

	_, err := fx.service.SetStock(ctx, book.ID, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.bookRepo.EXPECT().DecreaseStock(ctx, book.ID, 3).Return(domainerrors.ErrInsufficientStock)

	_, err = fx.service.DecreaseStock(ctx, book.ID, 3)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	fx.bookRepo.EXPECT().SetStock(ctx, book.ID, 9).Return(nil)
	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)

	_, err = fx.service.SetStock(ctx, book.ID, 9)
	require.NoError(t, err)
}
