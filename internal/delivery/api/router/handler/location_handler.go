package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"bookstore/internal/delivery/api/response"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandler exposes the administrative location tree.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

type createLocationRequest struct {
	Code string              `json:"code" validate:"required,max=32"`
	Name string              `json:"name" validate:"required,max=150"`
	Type entity.LocationType `json:"type" validate:"required,location_type"`
}

func (r *createLocationRequest) normalize() {
	r.Type = entity.LocationType(strings.ToUpper(strings.TrimSpace(string(r.Type))))
}

type renameLocationRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

type usersByAncestorRequest struct {
	Type  entity.LocationType `query:"type" validate:"required,location_type"`
	Match string              `query:"match" validate:"required"`
	By    entity.MatchField   `query:"by" validate:"match_field"`
}

func (r *usersByAncestorRequest) normalize() {
	r.Type = entity.LocationType(strings.ToUpper(strings.TrimSpace(string(r.Type))))
	r.By = entity.MatchField(strings.ToLower(strings.TrimSpace(string(r.By))))
}

// CreateLocation inserts a node under the parent named by the parentCode query parameter.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req createLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	loc, err := h.locationUC.InsertLocation(c.Request().Context(), usecase.InsertLocationInput{
		ParentCode: c.QueryParam("parentCode"),
		Code:       req.Code,
		Name:       req.Name,
		Type:       req.Type,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toLocationResponse(loc))
}

// ListLocations returns a page of nodes, optionally restricted to one level.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	var locationType *entity.LocationType
	if raw := c.QueryParam("type"); raw != "" {
		t, err := parseLocationType(raw)
		if err != nil {
			return err
		}
		locationType = &t
	}

	result, err := h.locationUC.ListLocations(c.Request().Context(), locationType, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(result, toLocationResponse))
}

// GetLocation returns the node with the given code.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	loc, err := h.locationUC.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(loc))
}

// ListChildren returns the nodes of the given type whose parent has the code in the parent
// query parameter. Without a parent the provinces are returned.
func (h *LocationHandler) ListChildren(c echo.Context) error {
	wanted, err := parseLocationType(c.Param("type"))
	if err != nil {
		return err
	}

	children, err := h.locationUC.ChildrenOf(c.Request().Context(), c.QueryParam("parent"), &wanted)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(children, toLocationResponse))
}

// GetFullPath renders the ancestor chain of a node, root first.
func (h *LocationHandler) GetFullPath(c echo.Context) error {
	path, err := h.locationUC.FullPath(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFullPathResponse(path))
}

// GetAncestor returns the ancestor of a node at the level given by the type query parameter.
func (h *LocationHandler) GetAncestor(c echo.Context) error {
	target, err := parseLocationType(c.QueryParam("type"))
	if err != nil {
		return err
	}

	ancestor, ok, err := h.locationUC.AncestorOfType(c.Request().Context(), c.Param("code"), target)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrLocationNotFound.WithDetails("no " + target.String() + " above " + c.Param("code"))
	}

	return response.Success(c, http.StatusOK, toLocationResponse(ancestor))
}

// RenameLocation changes a node's display name.
func (h *LocationHandler) RenameLocation(c echo.Context) error {
	var req renameLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	loc, err := h.locationUC.RenameLocation(c.Request().Context(), c.Param("code"), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(loc))
}

// DeleteLocation removes a leaf node.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "location deleted"})
}

// UsersByAncestor lists the users attached anywhere below the matched ancestor.
func (h *LocationHandler) UsersByAncestor(c echo.Context) error {
	var req usersByAncestorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	users, err := h.locationUC.UsersByAncestor(c.Request().Context(), usecase.UsersByAncestorInput{
		AncestorType: req.Type,
		Match:        req.Match,
		By:           req.By,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(users, toUserLocationResponse))
}

func parseLocationType(raw string) (entity.LocationType, error) {
	t := entity.LocationType(strings.ToUpper(raw))
	if !t.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown location type " + raw)
	}

	return t, nil
}
