package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	mockUsecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	userUC  *mockUsecase.MockUserUsecase
	orderUC *mockUsecase.MockOrderUsecase
	handler *UserHandler
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	userUC := mockUsecase.NewMockUserUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return userHandlerFixtures{
		userUC:  userUC,
		orderUC: orderUC,
		handler: NewUserHandler(UserHandlerParams{UserUC: userUC, OrderUC: orderUC, Logger: newDiscardLogger()}),
	}
}

func TestUserHandler_Register(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/auth/register", fx.handler.Register)

	user := &entity.User{ID: uuid.New(), FullName: "Eric Mugisha", Email: "eric@example.rw", PasswordHash: "$2a$hash", Role: entity.RoleCustomer}
	fx.userUC.EXPECT().
		Register(mock.Anything, usecase.RegisterUserInput{FullName: "Eric Mugisha", Email: "eric@example.rw", Password: "umuganda2024", LocationCode: "0102"}).
		Return(user, nil)

	rec, body := doRequest(t, e, http.MethodPost, "/auth/register",
		`{"fullName":"Eric Mugisha","email":"eric@example.rw","password":"umuganda2024","locationCode":"0102"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, string(body.Data), "$2a$hash")
	var got UserResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, entity.RoleCustomer, got.Role)
}

func TestUserHandler_Register_Validation(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/auth/register", fx.handler.Register)

	rec, body := doRequest(t, e, http.MethodPost, "/auth/register", `{"fullName":"Eric","email":"not-an-email","password":"short"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	details, ok := body.Error.Details.([]any)
	require.True(t, ok)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
}

func TestUserHandler_Register_ColumnLimits(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/auth/register", fx.handler.Register)

	payload := `{"fullName":"` + strings.Repeat("E", entity.MaxFullNameLength+1) + `","email":"eric@example.rw","password":"umuganda2024",` +
		`"phone":"` + strings.Repeat("7", entity.MaxPhoneLength+1) + `","locationCode":"` + strings.Repeat("0", entity.MaxLocationCodeLength+1) + `"}`

	rec, body := doRequest(t, e, http.MethodPost, "/auth/register", payload)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	details, ok := body.Error.Details.([]any)
	require.True(t, ok)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"fullName", "phone", "locationCode"}, fields)
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/auth/login", fx.handler.Login)

		user := &entity.User{ID: uuid.New(), Email: "eric@example.rw", Role: entity.RoleCustomer}
		fx.userUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "eric@example.rw", Password: "umuganda2024"}).
			Return(&usecase.LoginOutput{AccessToken: "token", ExpiresIn: 900, User: user}, nil)

		rec, body := doRequest(t, e, http.MethodPost, "/auth/login", `{"email":"eric@example.rw","password":"umuganda2024"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got LoginResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.Equal(t, "token", got.AccessToken)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, int64(900), got.ExpiresIn)
	})

	t.Run("bad credentials", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/auth/login", fx.handler.Login)

		fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec, body := doRequest(t, e, http.MethodPost, "/auth/login", `{"email":"eric@example.rw","password":"wrong-password"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})
}

func TestUserHandler_MyTotalSpent(t *testing.T) {
	fx := createTestUserHandler(t)
	userID := uuid.New()
	e := newTestEcho()
	e.GET("/orders/total-spent", fx.handler.MyTotalSpent, asUser(userID, entity.RoleCustomer))

	fx.orderUC.EXPECT().UserTotalSpent(mock.Anything, userID).Return(decimal.RequireFromString("37.50"), nil)

	rec, body := doRequest(t, e, http.MethodGet, "/orders/total-spent", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"`+userID.String()+`","totalSpent":"37.5"}`, string(body.Data))
}

func TestUserHandler_GetProfile_RequiresCaller(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.GET("/users/me", fx.handler.GetProfile)

	rec, body := doRequest(t, e, http.MethodGet, "/users/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestUserHandler_ListUsers_RoleFilter(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.GET("/users", fx.handler.ListUsers, asUser(uuid.New(), entity.RoleAdmin))

	admin := entity.RoleAdmin
	fx.userUC.EXPECT().
		ListUsers(mock.Anything, mock.Anything, entity.PageRequest{Page: 1, Size: 5}).
		RunAndReturn(func(_ context.Context, filter repository.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error) {
			assert.Equal(t, &admin, filter.Role)
			assert.Equal(t, "uwase", filter.NameLike)

			return entity.NewPage([]*entity.User{{ID: uuid.New(), Role: entity.RoleAdmin}}, page, 6), nil
		})

	rec, body := doRequest(t, e, http.MethodGet, "/users?role=ADMIN&name=uwase&page=1&size=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got PageResponse[UserResponse]
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, int64(6), got.Total)
	assert.Len(t, got.Items, 1)
}
