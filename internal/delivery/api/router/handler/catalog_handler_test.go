package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_CategoryHasBooks(t *testing.T) {
	setup := func(t *testing.T) (*mockUsecase.MockCategoryUsecase, *echo.Echo) {
		categoryUC := mockUsecase.NewMockCategoryUsecase(t)
		h := NewCatalogHandler(CatalogHandlerParams{
			CategoryUC: categoryUC,
			BookUC:     mockUsecase.NewMockBookUsecase(t),
			Logger:     newDiscardLogger(),
		})
		e := newTestEcho()
		e.GET("/categories/:id/has-books", h.CategoryHasBooks)

		return categoryUC, e
	}

	t.Run("category with books", func(t *testing.T) {
		categoryUC, e := setup(t)
		id := uuid.New()

		categoryUC.EXPECT().HasBooks(mock.Anything, id).Return(true, nil)

		rec, body := doRequest(t, e, http.MethodGet, "/categories/"+id.String()+"/has-books", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got categoryHasBooksResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.Equal(t, id, got.CategoryID)
		assert.True(t, got.HasBooks)
	})

	t.Run("unknown category", func(t *testing.T) {
		categoryUC, e := setup(t)
		id := uuid.New()

		categoryUC.EXPECT().HasBooks(mock.Anything, id).Return(false, domainerrors.ErrCategoryNotFound)

		rec, _ := doRequest(t, e, http.MethodGet, "/categories/"+id.String()+"/has-books", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, e := setup(t)

		rec, _ := doRequest(t, e, http.MethodGet, "/categories/not-a-uuid/has-books", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
