package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookstore/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthResponse{Status: "ok"})
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// Ready pings the database within a short deadline.
func (h *HealthHandler) Ready(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Readiness check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
	}

	return response.Success(c, http.StatusOK, healthResponse{Status: "ready"})
}
