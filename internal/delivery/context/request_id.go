// Package context carries per-request values between middleware, handlers and
// services: the request ID, the request-scoped logger and the authenticated caller.
//
// Echo-level values live in echo.Context under string keys; values that must
// reach services travel in the request's context.Context under unexported keys.
package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

const echoKeyRequestID = "request_id"

type requestIDKey struct{}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the ID stored by SetRequestID. Responses built before
// the request ID middleware ran still get a fresh one.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoKeyRequestID).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID attaches requestID to ctx for services and the gorm logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns "" when ctx did not come through the middleware.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}
