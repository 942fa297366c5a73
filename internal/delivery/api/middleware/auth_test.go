package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
	mockService "bookstore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func serve(t *testing.T, h echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		setup    func(tokens *mockService.MockTokenService)
		wantCode int
		wantErr  string
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized, wantErr: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized, wantErr: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", header: "Bearer ", wantCode: http.StatusUnauthorized, wantErr: "INVALID_TOKEN_FORMAT"},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"ADMIN"}}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

			var actorID uuid.UUID
			var actorRoles entity.Roles
			rec := serve(t, m.Authenticate(func(c echo.Context) error {
				actor, ok := GetActor(c)
				require.True(t, ok)
				actorID, actorRoles = actor.UserID, actor.Roles

				return c.NoContent(http.StatusOK)
			}), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))

				return
			}
			assert.Equal(t, userID, actorID)
			assert.True(t, actorRoles.Contains(entity.RoleAdmin))
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tokens.EXPECT().ValidateToken("customer").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"CUSTOMER"}}, nil)
	tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"CUSTOMER", "ADMIN"}}, nil)

	guarded := m.Authenticate(m.RequireRole(entity.RoleAdmin)(ok))

	rec := serve(t, guarded, "Bearer customer")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	rec = serve(t, guarded, "Bearer admin")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Without Authenticate there is no role information at all.
	rec = serve(t, m.RequireRole(entity.RoleAdmin)(ok), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
