package handler

import (
	"strconv"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LocationResponse is the wire form of a tree node.
type LocationResponse struct {
	ID        uuid.UUID           `json:"id"`
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	Type      entity.LocationType `json:"type"`
	ParentID  *uuid.UUID          `json:"parentId,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// FullPathResponse is the rendered ancestor chain of a node.
type FullPathResponse struct {
	Code string `json:"code"`
	Path string `json:"path"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         uuid.UUID         `json:"id"`
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Role       entity.Role       `json:"role"`
	LocationID *uuid.UUID        `json:"locationId,omitempty"`
	Location   *LocationResponse `json:"location,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// UserLocationResponse pairs a user with the node they are attached to.
type UserLocationResponse struct {
	User     *UserResponse     `json:"user"`
	Location *LocationResponse `json:"location,omitempty"`
	Path     string            `json:"path,omitempty"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	CategoryID    uuid.UUID         `json:"categoryId"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Price         decimal.Decimal   `json:"price"`
	StockQuantity int               `json:"stockQuantity"`
	InStock       bool              `json:"inStock"`
	CoverImage    string            `json:"coverImage,omitempty"`
	FileURL       string            `json:"fileUrl,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type CartItemResponse struct {
	ID       uuid.UUID     `json:"id"`
	BookID   uuid.UUID     `json:"bookId"`
	Book     *BookResponse `json:"book,omitempty"`
	Quantity int           `json:"quantity"`
	AddedAt  time.Time     `json:"addedAt"`
}

type CartSummaryResponse struct {
	Items      []*CartItemResponse `json:"items"`
	TotalItems int                 `json:"totalItems"`
	TotalPrice decimal.Decimal     `json:"totalPrice"`
}

type OrderDetailResponse struct {
	BookID   uuid.UUID       `json:"bookId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"userId"`
	OrderDate   time.Time              `json:"orderDate"`
	Status      entity.OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	Details     []*OrderDetailResponse `json:"details"`
}

type PaymentResponse struct {
	ID          uuid.UUID            `json:"id"`
	OrderID     uuid.UUID            `json:"orderId"`
	Method      entity.PaymentMethod `json:"method"`
	Amount      decimal.Decimal      `json:"amount"`
	Status      entity.PaymentStatus `json:"status"`
	PaymentDate time.Time            `json:"paymentDate"`
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	BookID    uuid.UUID `json:"bookId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingResponse struct {
	BookID  uuid.UUID `json:"bookId"`
	Average float64   `json:"average"`
	Count   int64     `json:"count"`
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// --- Mapping ---

func mapSlice[S, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

func toPageResponse[S, T any](page *entity.Page[S], fn func(S) T) *PageResponse[T] {
	return &PageResponse[T]{
		Items: mapSlice(page.Items, fn),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
}

func toLocationResponse(loc *entity.Location) *LocationResponse {
	if loc == nil {
		return nil
	}

	return &LocationResponse{
		ID:        loc.ID,
		Code:      loc.Code,
		Name:      loc.Name,
		Type:      loc.Type,
		ParentID:  loc.ParentID,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}

func toFullPathResponse(path *usecase.LocationPath) *FullPathResponse {
	return &FullPathResponse{Code: path.Code, Path: path.Path}
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		LocationID: user.LocationID,
		Location:   toLocationResponse(user.Location),
		CreatedAt:  user.CreatedAt,
	}
}

func toUserLocationResponse(ul *entity.UserLocation) *UserLocationResponse {
	return &UserLocationResponse{
		User:     toUserResponse(ul.User),
		Location: toLocationResponse(ul.Location),
		Path:     ul.Path,
	}
}

func toCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}

	return &CategoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}
}

func toBookResponse(book *entity.Book) *BookResponse {
	if book == nil {
		return nil
	}

	return &BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		CategoryID:    book.CategoryID,
		Category:      toCategoryResponse(book.Category),
		Price:         book.Price,
		StockQuantity: book.StockQuantity,
		InStock:       book.InStock(),
		CoverImage:    book.CoverImage,
		FileURL:       book.FileURL,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}

func toCartItemResponse(item *entity.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:       item.ID,
		BookID:   item.BookID,
		Book:     toBookResponse(item.Book),
		Quantity: item.Quantity,
		AddedAt:  item.AddedAt,
	}
}

func toCartSummaryResponse(summary *entity.CartSummary) *CartSummaryResponse {
	return &CartSummaryResponse{
		Items:      mapSlice(summary.Items, toCartItemResponse),
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice,
	}
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		OrderDate:   order.OrderDate,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Details: mapSlice(order.Details, func(d *entity.OrderDetail) *OrderDetailResponse {
			return &OrderDetailResponse{BookID: d.BookID, Quantity: d.Quantity, Price: d.Price, Subtotal: d.Subtotal()}
		}),
	}
}

func toPaymentResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		Method:      payment.Method,
		Amount:      payment.Amount,
		Status:      payment.Status,
		PaymentDate: payment.PaymentDate,
	}
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		BookID:    review.BookID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// --- Request helpers ---

// uuidParam parses a uuid path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}

	return id, nil
}

// pageQuery reads the zero-based page and size query parameters. Missing values are left
// at zero so the service applies its defaults.
func pageQuery(c echo.Context) (entity.PageRequest, error) {
	var page entity.PageRequest
	for name, dst := range map[string]*int{"page": &page.Page, "size": &page.Size} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return entity.PageRequest{}, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
		}
		*dst = value
	}

	return page, nil
}

// normalizer is implemented by requests whose enum fields are matched case-insensitively.
type normalizer interface {
	normalize()
}

// bindAndValidate binds the request into input and runs the registered validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid request body")
	}
	if n, ok := input.(normalizer); ok {
		n.normalize()
	}

	return c.Validate(input)
}

// MessageResponse acknowledges an operation that has no resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}
