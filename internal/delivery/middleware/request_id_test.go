package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "bookstore/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()

	var fromContext string
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromContext
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	header, ctxID := runRequestID(t, "trace-42")

	assert.Equal(t, "trace-42", header)
	assert.Equal(t, "trace-42", ctxID)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	for name, incoming := range map[string]string{
		"missing":  "",
		"too long": strings.Repeat("x", maxRequestIDLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			header, ctxID := runRequestID(t, incoming)

			_, err := uuid.Parse(header)
			require.NoError(t, err)
			assert.Equal(t, header, ctxID)
		})
	}
}
