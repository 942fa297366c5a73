package context

import (
	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	echoKeyUserID = "user_id"
	echoKeyRoles  = "roles"
)

// SetAuth records the caller authenticated from the bearer token.
func SetAuth(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(echoKeyUserID, userID)
	c.Set(echoKeyRoles, roles)
}

// GetUserID reports false on routes without the Authenticate middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(echoKeyUserID).(uuid.UUID)

	return userID, ok
}

func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(echoKeyRoles).(entity.Roles)

	return roles, ok
}
