package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/cart", asUser(userID, entity.RoleCustomer))
	g.GET("", h.GetCart)
	g.DELETE("", h.ClearCart)
	g.POST("/items", h.AddItem)
	g.PUT("/items/:id", h.UpdateItem)
	g.DELETE("/items/:id", h.RemoveItem)

	return e, cartUC
}

func TestCartHandler_AddItem(t *testing.T) {
	userID := uuid.New()
	e, cartUC := setupCartHandler(t, userID)
	book := &entity.Book{ID: uuid.New(), Title: "Baking Cakes in Kigali", Price: decimal.RequireFromString("20.00"), StockQuantity: 3}

	cartUC.EXPECT().AddItem(mock.Anything, userID, book.ID, 2).Return(&entity.CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		BookID:   book.ID,
		Book:     book,
		Quantity: 2,
	}, nil)

	rec, body := doRequest(t, e, http.MethodPost, "/cart/items", `{"bookId":"`+book.ID.String()+`","quantity":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got CartItemResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, 2, got.Quantity)
	require.NotNil(t, got.Book)
	assert.True(t, got.Book.InStock)
}

func TestCartHandler_GetCart(t *testing.T) {
	userID := uuid.New()
	e, cartUC := setupCartHandler(t, userID)

	cartUC.EXPECT().Summary(mock.Anything, userID).Return(&entity.CartSummary{
		UserID:     userID,
		Items:      []*entity.CartItem{},
		TotalItems: 0,
		TotalPrice: decimal.Zero,
	}, nil)

	rec, body := doRequest(t, e, http.MethodGet, "/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"totalItems":0,"totalPrice":"0"}`, string(body.Data))
}

func TestCartHandler_RemoveItem(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	e, cartUC := setupCartHandler(t, userID)

	cartUC.EXPECT().RemoveItem(mock.Anything, userID, itemID).Return(nil).Once()
	rec, _ := doRequest(t, e, http.MethodDelete, "/cart/items/"+itemID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cartUC.EXPECT().RemoveItem(mock.Anything, userID, itemID).Return(domainerrors.ErrCartItemNotFound).Once()
	rec, body := doRequest(t, e, http.MethodDelete, "/cart/items/"+itemID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrCartItemNotFound.ErrorCode(), body.Error.Code)
}
