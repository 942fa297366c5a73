package handler

import (
	"log/slog"
	"net/http"
	"strconv"

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

// CatalogHandler serves categories and books.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	bookUC     usecase.BookUsecase
	logger     *slog.Logger
}

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	BookUC     usecase.BookUsecase
	Logger     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		bookUC:     params.BookUC,
		logger:     params.Logger,
	}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type createBookRequest struct {
	Title         string          `json:"title" validate:"required,max=255"`
	Author        string          `json:"author" validate:"required,max=255"`
	CategoryID    uuid.UUID       `json:"categoryId" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	CoverImage    string          `json:"coverImage" validate:"omitempty,url,max=512"`
	FileURL       string          `json:"fileUrl" validate:"omitempty,url,max=512"`
}

type updateBookRequest struct {
	Title      *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Author     *string          `json:"author" validate:"omitempty,min=1,max=255"`
	CategoryID *uuid.UUID       `json:"categoryId"`
	Price      *decimal.Decimal `json:"price"`
	CoverImage *string          `json:"coverImage" validate:"omitempty,url,max=512"`
	FileURL    *string          `json:"fileUrl" validate:"omitempty,url,max=512"`
}

type stockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// --- Categories ---

// CreateCategory adds a category with a unique name
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toCategoryResponse(category))
}

// ListCategories returns every category ordered by name
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(categories, toCategoryResponse))
}

// GetCategory returns one category
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// RenameCategory changes a category's name
func (h *CatalogHandler) RenameCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.RenameCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory removes a category that no book refers to
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "category deleted"})
}

type categoryHasBooksResponse struct {
	CategoryID uuid.UUID `json:"categoryId"`
	HasBooks   bool      `json:"hasBooks"`
}

// CategoryHasBooks reports whether a category can be deleted
func (h *CatalogHandler) CategoryHasBooks(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	hasBooks, err := h.categoryUC.HasBooks(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categoryHasBooksResponse{CategoryID: id, HasBooks: hasBooks})
}

// --- Books ---

// CreateBook adds a book to the catalog
func (h *CatalogHandler) CreateBook(c echo.Context) error {
	var req createBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.CreateBook(c.Request().Context(), usecase.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CoverImage:    req.CoverImage,
		FileURL:       req.FileURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toBookResponse(book))
}

// SearchBooks filters the catalog by keyword, author, category, price range and stock
func (h *CatalogHandler) SearchBooks(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	filter, err := bookFilterQuery(c)
	if err != nil {
		return err
	}

	books, err := h.bookUC.SearchBooks(c.Request().Context(), filter, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(books, toBookResponse))
}

// GetBook returns one book with its category
func (h *CatalogHandler) GetBook(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	book, err := h.bookUC.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// UpdateBook changes the supplied book fields
func (h *CatalogHandler) UpdateBook(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.UpdateBook(c.Request().Context(), id, usecase.UpdateBookInput{
		Title:      req.Title,
		Author:     req.Author,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		CoverImage: req.CoverImage,
		FileURL:    req.FileURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// SetStock overwrites a book's stock quantity
func (h *CatalogHandler) SetStock(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req stockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.SetStock(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// DecreaseStock takes copies out of stock, failing when fewer are available
func (h *CatalogHandler) DecreaseStock(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req stockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.DecreaseStock(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// DeleteBook removes a book that no order refers to
func (h *CatalogHandler) DeleteBook(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookUC.DeleteBook(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "book deleted"})
}

func bookFilterQuery(c echo.Context) (entity.BookFilter, error) {
	filter := entity.BookFilter{
		Keyword: c.QueryParam("q"),
		Author:  c.QueryParam("author"),
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid categoryId")
		}
		filter.CategoryID = &id
	}

	for name, dst := range map[string]**decimal.Decimal{"minPrice": &filter.MinPrice, "maxPrice": &filter.MaxPrice} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
		}
		*dst = &value
	}

	if raw := c.QueryParam("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid inStock")
		}
		filter.InStockOnly = inStock
	}

	return filter, nil
}
