package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/delivery/api/validator"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (int, envelope) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/books", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	err := errors.WithStack(domainerrors.ErrLocationNotFound.WithDetails("no DISTRICT above code 0101"))

	code, body := handleError(t, err)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, domainerrors.ErrLocationNotFound.ErrorCode(), body.Error.Code)
	assert.JSONEq(t, `"no DISTRICT above code 0101"`, string(body.Error.Details))
}

func TestErrorMiddleware_ValidationErrors(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,location_type"`
	}

	verr := validator.New().Validate(&request{Type: "COUNTY"})
	require.Error(t, verr)

	code, body := handleError(t, verr)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	var fields []validator.FieldError
	require.NoError(t, json.Unmarshal(body.Error.Details, &fields))
	assert.ElementsMatch(t, []validator.FieldError{
		{Field: "name", Rule: "required"},
		{Field: "type", Rule: "location_type"},
	}, fields)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "method not allowed", body.Error.Message)
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection refused")
	assert.Empty(t, body.Error.Details)
}
