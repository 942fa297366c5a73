package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLocationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockLocationUsecase) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/locations", h.ListLocations)
	e.POST("/locations", h.CreateLocation)
	e.GET("/locations/:code", h.GetLocation)
	e.GET("/locations/:type/children", h.ListChildren)
	e.GET("/locations/:code/full-path", h.GetFullPath)
	e.GET("/locations/:code/ancestor", h.GetAncestor)
	e.DELETE("/locations/:id", h.DeleteLocation)
	e.GET("/users/by-ancestor", h.UsersByAncestor)

	return e, locationUC
}

func TestLocationHandler_CreateLocation(t *testing.T) {
	t.Run("created under parent", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)
		parentID := uuid.New()
		created := &entity.Location{ID: uuid.New(), Code: "0102", Name: "Nyarugenge", Type: entity.LocationDistrict, ParentID: &parentID}

		locationUC.EXPECT().
			InsertLocation(mock.Anything, usecase.InsertLocationInput{ParentCode: "01", Code: "0102", Name: "Nyarugenge", Type: entity.LocationDistrict}).
			Return(created, nil)

		rec, body := doRequest(t, e, http.MethodPost, "/locations?parentCode=01", `{"code":"0102","name":"Nyarugenge","type":"DISTRICT"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got LocationResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.Equal(t, "0102", got.Code)
		assert.Equal(t, &parentID, got.ParentID)
	})

	t.Run("unknown type is rejected before the usecase", func(t *testing.T) {
		e, _ := setupLocationHandler(t)

		rec, body := doRequest(t, e, http.MethodPost, "/locations", `{"code":"01","name":"Kigali","type":"COUNTY"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		details, ok := body.Error.Details.([]any)
		require.True(t, ok)
		require.Len(t, details, 1)
		assert.Equal(t, "type", details[0].(map[string]any)["field"])
	})

	t.Run("code over column size is rejected before the usecase", func(t *testing.T) {
		e, _ := setupLocationHandler(t)

		rec, body := doRequest(t, e, http.MethodPost, "/locations", `{"code":"`+strings.Repeat("9", entity.MaxLocationCodeLength+1)+`","name":"Kigali","type":"PROVINCE"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("duplicate code", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)

		locationUC.EXPECT().InsertLocation(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateCode.WrapMessage("insert location"))

		rec, body := doRequest(t, e, http.MethodPost, "/locations", `{"code":"01","name":"Kigali","type":"PROVINCE"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_CODE", body.Error.Code)
	})

	t.Run("parent not found", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)

		locationUC.EXPECT().InsertLocation(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrParentNotFound)

		rec, body := doRequest(t, e, http.MethodPost, "/locations?parentCode=99", `{"code":"9901","name":"Nowhere","type":"DISTRICT"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PARENT_NOT_FOUND", body.Error.Code)
	})
}

func TestLocationHandler_ListChildren(t *testing.T) {
	e, locationUC := setupLocationHandler(t)
	wanted := entity.LocationSector
	children := []*entity.Location{
		{ID: uuid.New(), Code: "010201", Name: "Nyamirambo", Type: entity.LocationSector},
		{ID: uuid.New(), Code: "010202", Name: "Kimisagara", Type: entity.LocationSector},
	}

	locationUC.EXPECT().ChildrenOf(mock.Anything, "0102", &wanted).Return(children, nil)

	rec, body := doRequest(t, e, http.MethodGet, "/locations/sector/children?parent=0102", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []LocationResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Kimisagara", got[1].Name)
}

func TestLocationHandler_ListChildren_UnknownType(t *testing.T) {
	e, _ := setupLocationHandler(t)

	rec, body := doRequest(t, e, http.MethodGet, "/locations/county/children", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestLocationHandler_GetFullPath(t *testing.T) {
	e, locationUC := setupLocationHandler(t)

	locationUC.EXPECT().FullPath(mock.Anything, "0102010101").Return(&usecase.LocationPath{
		Code: "0102010101",
		Path: "Kigali City / Nyarugenge / Nyamirambo / Rugarama / Kiberinka",
	}, nil)

	rec, body := doRequest(t, e, http.MethodGet, "/locations/0102010101/full-path", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got FullPathResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, "Kigali City / Nyarugenge / Nyamirambo / Rugarama / Kiberinka", got.Path)
}

func TestLocationHandler_GetLocation_NotFound(t *testing.T) {
	e, locationUC := setupLocationHandler(t)

	locationUC.EXPECT().GetByCode(mock.Anything, "77").Return(nil, domainerrors.ErrLocationNotFound)

	rec, body := doRequest(t, e, http.MethodGet, "/locations/77", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LOCATION_NOT_FOUND", body.Error.Code)
}

func TestLocationHandler_GetAncestor(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)
		province := &entity.Location{ID: uuid.New(), Code: "01", Name: "Kigali City", Type: entity.LocationProvince}

		locationUC.EXPECT().AncestorOfType(mock.Anything, "010201", entity.LocationProvince).Return(province, true, nil)

		rec, body := doRequest(t, e, http.MethodGet, "/locations/010201/ancestor?type=PROVINCE", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got LocationResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.Equal(t, "01", got.Code)
	})

	t.Run("no ancestor at that level", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)

		locationUC.EXPECT().AncestorOfType(mock.Anything, "01", entity.LocationVillage).Return(nil, false, nil)

		rec, body := doRequest(t, e, http.MethodGet, "/locations/01/ancestor?type=VILLAGE", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LOCATION_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "no VILLAGE above 01", body.Error.Details)
	})
}

func TestLocationHandler_DeleteLocation(t *testing.T) {
	t.Run("has children", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)
		id := uuid.New()

		locationUC.EXPECT().DeleteLocation(mock.Anything, id).Return(domainerrors.ErrHasChildren)

		rec, body := doRequest(t, e, http.MethodDelete, "/locations/"+id.String(), "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "HAS_CHILDREN", body.Error.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)
		id := uuid.New()

		locationUC.EXPECT().DeleteLocation(mock.Anything, id).Return(nil)

		rec, _ := doRequest(t, e, http.MethodDelete, "/locations/"+id.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := setupLocationHandler(t)

		rec, body := doRequest(t, e, http.MethodDelete, "/locations/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}

func TestLocationHandler_UsersByAncestor(t *testing.T) {
	t.Run("pairs users with paths", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)
		village := &entity.Location{ID: uuid.New(), Code: "0102010101", Name: "Kiberinka", Type: entity.LocationVillage}
		user := &entity.User{ID: uuid.New(), FullName: "Aline Uwase", Email: "aline@example.rw", PasswordHash: "secret-hash", Role: entity.RoleCustomer}

		locationUC.EXPECT().
			UsersByAncestor(mock.Anything, usecase.UsersByAncestorInput{AncestorType: entity.LocationProvince, Match: "Kigali City", By: entity.MatchByName}).
			Return([]*entity.UserLocation{{User: user, Location: village, Path: "Kigali City / Nyarugenge / Nyamirambo / Rugarama / Kiberinka"}}, nil)

		rec, body := doRequest(t, e, http.MethodGet, "/users/by-ancestor?type=PROVINCE&match=Kigali%20City&by=name", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, string(body.Data), "secret-hash")
		var got []UserLocationResponse
		require.NoError(t, json.Unmarshal(body.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "aline@example.rw", got[0].User.Email)
		assert.Equal(t, "0102010101", got[0].Location.Code)
	})

	t.Run("type and by are case-insensitive", func(t *testing.T) {
		e, locationUC := setupLocationHandler(t)

		locationUC.EXPECT().
			UsersByAncestor(mock.Anything, usecase.UsersByAncestorInput{AncestorType: entity.LocationDistrict, Match: "0102", By: entity.MatchByCode}).
			Return([]*entity.UserLocation{}, nil)

		rec, _ := doRequest(t, e, http.MethodGet, "/users/by-ancestor?type=district&match=0102&by=CODE", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("match is required", func(t *testing.T) {
		e, _ := setupLocationHandler(t)

		rec, body := doRequest(t, e, http.MethodGet, "/users/by-ancestor?type=PROVINCE", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}
