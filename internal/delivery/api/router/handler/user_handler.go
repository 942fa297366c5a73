package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUC  usecase.UserUsecase
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:  params.UserUC,
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type registerRequest struct {
	FullName     string `json:"fullName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	LocationCode string `json:"locationCode" validate:"omitempty,max=32"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type changeRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,role"`
}

type assignLocationRequest struct {
	LocationCode string `json:"locationCode" validate:"required,max=32"`
}

type totalSpentResponse struct {
	UserID     uuid.UUID       `json:"userId"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

type countResponse struct {
	Role  entity.Role `json:"role"`
	Count int64       `json:"count"`
}

// Register handles customer registration
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterUserInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		LocationCode: req.LocationCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(user))
}

// Login handles user login
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	})
}

// GetProfile returns the caller together with the full path of their location
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	profile, err := h.userUC.GetUserWithLocation(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserLocationResponse(profile))
}

// UpdateProfile changes the caller's name or phone
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword replaces the caller's password after checking the current one
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "password changed"})
}

// AssignMyLocation attaches the caller to a location node
func (h *UserHandler) AssignMyLocation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.assignLocation(c, userID)
}

// MyTotalSpent returns how much the caller spent on delivered and completed orders
func (h *UserHandler) MyTotalSpent(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.totalSpent(c, userID)
}

// ListUsers returns a page of users filtered by role and name
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	filter := repository.UserFilter{NameLike: c.QueryParam("name")}
	if raw := c.QueryParam("role"); raw != "" {
		role, ok := entity.ParseRole(raw)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("unknown role " + raw)
		}
		filter.Role = &role
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), filter, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(users, toUserResponse))
}

// CountUsers returns the number of users holding the role query parameter
func (h *UserHandler) CountUsers(c echo.Context) error {
	role, ok := entity.ParseRole(c.QueryParam("role"))
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + c.QueryParam("role"))
	}

	count, err := h.userUC.CountByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Role: role, Count: count})
}

// GetUser returns one user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangeRole grants a role to a user
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.ChangeRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// AssignLocation attaches any user to a location node
func (h *UserHandler) AssignLocation(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.assignLocation(c, id)
}

// UserTotalSpent returns how much a user spent on delivered and completed orders
func (h *UserHandler) UserTotalSpent(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.totalSpent(c, id)
}

// DeleteUser removes a user account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "user deleted"})
}

func (h *UserHandler) assignLocation(c echo.Context, userID uuid.UUID) error {
	var req assignLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.AssignLocation(c.Request().Context(), userID, req.LocationCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) totalSpent(c echo.Context, userID uuid.UUID) error {
	total, err := h.orderUC.UserTotalSpent(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totalSpentResponse{UserID: userID, TotalSpent: total})
}

// callerID returns the authenticated user's id. Routes using it sit behind Authenticate.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	return userID, nil
}

// callerActor returns the authenticated caller with their roles.
func callerActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	return actor, nil
}
