package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/config"
	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/router/handler"
	"bookstore/internal/delivery/api/validator"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
	mockService "bookstore/internal/mocks/service"
	mockUsecase "bookstore/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo       *echo.Echo
	tokens     *mockService.MockTokenService
	locationUC *mockUsecase.MockLocationUsecase
	reportUC   *mockUsecase.MockReportUsecase
}

func setupRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := mockService.NewMockTokenService(t)
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	r := NewRouter(RouterParams{
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: locationUC, Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, OrderUC: orderUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CategoryUC: mockUsecase.NewMockCategoryUsecase(t),
			BookUC:     mockUsecase.NewMockBookUsecase(t),
			Logger:     logger,
		}),
		CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: mockUsecase.NewMockCartUsecase(t), Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
		PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: mockUsecase.NewMockPaymentUsecase(t), Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mockUsecase.NewMockReviewUsecase(t), Logger: logger}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: reportUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokens}),
		Config:         &config.Config{},
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, tokens: tokens, locationUC: locationUC, reportUC: reportUC}
}

func (fx routerFixtures) serve(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	fx := setupRouter(t)

	rec := fx.serve(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_LocationReadsArePublic(t *testing.T) {
	fx := setupRouter(t)

	fx.locationUC.EXPECT().GetByCode(mock.Anything, "01").Return(&entity.Location{ID: uuid.New(), Code: "01", Name: "Kigali City", Type: entity.LocationProvince}, nil)

	rec := fx.serve(http.MethodGet, "/api/v1/locations/01", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LocationWritesRequireAdmin(t *testing.T) {
	body := `{"code":"01","name":"Kigali City","type":"PROVINCE"}`

	t.Run("missing token", func(t *testing.T) {
		fx := setupRouter(t)

		rec := fx.serve(http.MethodPost, "/api/v1/locations", "", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := setupRouter(t)
		fx.tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

		rec := fx.serve(http.MethodPost, "/api/v1/locations", "forged", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("customer", func(t *testing.T) {
		fx := setupRouter(t)
		fx.tokens.EXPECT().ValidateToken("customer").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"CUSTOMER"}}, nil)

		rec := fx.serve(http.MethodPost, "/api/v1/locations", "customer", body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		fx := setupRouter(t)
		fx.tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"ADMIN"}}, nil)
		fx.locationUC.EXPECT().InsertLocation(mock.Anything, mock.Anything).Return(&entity.Location{ID: uuid.New(), Code: "01", Name: "Kigali City", Type: entity.LocationProvince}, nil)

		rec := fx.serve(http.MethodPost, "/api/v1/locations", "admin", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestRouter_UsersByAncestorIsAdminOnly(t *testing.T) {
	fx := setupRouter(t)
	fx.tokens.EXPECT().ValidateToken("customer").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"CUSTOMER"}}, nil)

	rec := fx.serve(http.MethodGet, "/api/v1/users/by-ancestor?type=PROVINCE&match=01", "customer", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ReportsAreAdminOnly(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		fx := setupRouter(t)
		fx.tokens.EXPECT().ValidateToken("customer").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"CUSTOMER"}}, nil)

		rec := fx.serve(http.MethodGet, "/api/v1/reports/sales", "customer", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		fx := setupRouter(t)
		fx.tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"ADMIN"}}, nil)
		fx.reportUC.EXPECT().SalesStatistics(mock.Anything).Return(&entity.SalesStatistics{OrdersByStatus: map[entity.OrderStatus]int64{}}, nil)

		rec := fx.serve(http.MethodGet, "/api/v1/reports/sales", "admin", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
