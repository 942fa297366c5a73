package impl

import (
	"context"
	"strings"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	mockRepo "bookstore/internal/mocks/repository"
	mockSvc "bookstore/internal/mocks/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	userRepo     *mockRepo.MockUserRepository
	cache        *mockSvc.MockLocationPathCache
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockSvc.NewMockLocationPathCache(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		UserRepo:     userRepo,
		PathCache:    cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		cache:        cache,
	}
}

func TestLocationService_InsertLocation_Province(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{
		Code: "K1",
		Name: "Kigali City",
		Type: entity.LocationProvince,
	})

	require.NoError(t, err)
	assert.Equal(t, "K1", location.Code)
	assert.Nil(t, location.ParentID)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestLocationService_InsertLocation_UnderParent(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	tree := buildKigali()

	fx.locationRepo.EXPECT().FindByCode(ctx, "K1").Return(tree.province, nil)
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(_ context.Context, location *entity.Location) {
			require.NotNil(t, location.ParentID)
			assert.Equal(t, tree.province.ID, *location.ParentID)
		}).
		Return(nil)

	location, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{
		ParentCode: "K1",
		Code:       "K1-D1",
		Name:       "Gasabo",
		Type:       entity.LocationDistrict,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LocationDistrict, location.Type)
}

func TestLocationService_InsertLocation_HierarchyViolations(t *testing.T) {
	tree := buildKigali()

	tests := []struct {
		name       string
		parent     *entity.Location
		input      usecase.InsertLocationInput
		wantLookup bool
	}{
		{
			name:  "sector without parent",
			input: usecase.InsertLocationInput{Code: "S9", Name: "Loose", Type: entity.LocationSector},
		},
		{
			name:       "sector under province skips a level",
			parent:     tree.province,
			input:      usecase.InsertLocationInput{ParentCode: "K1", Code: "K1-S1", Name: "Remera", Type: entity.LocationSector},
			wantLookup: true,
		},
		{
			name:       "province under district",
			parent:     tree.district,
			input:      usecase.InsertLocationInput{ParentCode: "K1-D1", Code: "P2", Name: "North", Type: entity.LocationProvince},
			wantLookup: true,
		},
		{
			name:       "village under village",
			parent:     tree.village,
			input:      usecase.InsertLocationInput{ParentCode: tree.village.Code, Code: "V2", Name: "Ubumwe", Type: entity.LocationVillage},
			wantLookup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			ctx := context.Background()
			if tt.wantLookup {
				fx.locationRepo.EXPECT().FindByCode(ctx, tt.input.ParentCode).Return(tt.parent, nil)
			}

			_, err := fx.service.InsertLocation(ctx, tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidHierarchy), "got %v", err)
			fx.locationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLocationService_InsertLocation_ParentNotFound(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, domainerrors.ErrLocationNotFound)

	_, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{
		ParentCode: "NOPE",
		Code:       "NOPE-D1",
		Name:       "Nowhere",
		Type:       entity.LocationDistrict,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrParentNotFound))
}

func TestLocationService_InsertLocation_DuplicateCode(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(domainerrors.ErrDuplicateCode.WrapMessage("code K1"))

	_, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{
		Code: "K1",
		Name: "Kigali City",
		Type: entity.LocationProvince,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCode))
}

func TestLocationService_InsertLocation_Validation(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{Code: " ", Name: "x", Type: entity.LocationProvince})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.InsertLocation(ctx, usecase.InsertLocationInput{Code: "X", Name: "x", Type: "COUNTY"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_InsertLocation_ColumnLimits(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.InsertLocationInput
	}{
		{"code too long", usecase.InsertLocationInput{Code: strings.Repeat("K", entity.MaxLocationCodeLength+1), Name: "Kigali", Type: entity.LocationProvince}},
		{"name too long", usecase.InsertLocationInput{Code: "K1", Name: strings.Repeat("Kigali ", 22), Type: entity.LocationProvince}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)

			_, err := fx.service.InsertLocation(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
			fx.locationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("multibyte name at the limit", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()
		name := strings.Repeat("ŵ", entity.MaxLocationNameLength)

		fx.locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

		location, err := fx.service.InsertLocation(ctx, usecase.InsertLocationInput{Code: "K1", Name: name, Type: entity.LocationProvince})

		require.NoError(t, err)
		assert.Equal(t, name, location.Name)
	})
}

func TestLocationService_DeleteLocation(t *testing.T) {
	tree := buildKigali()

	t.Run("has children", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByID(ctx, tree.district.ID).Return(tree.district, nil)
		fx.locationRepo.EXPECT().CountChildren(ctx, tree.district.ID).Return(int64(1), nil)

		err := fx.service.DeleteLocation(ctx, tree.district.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrHasChildren))
		fx.locationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("child added concurrently", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByID(ctx, tree.cell.ID).Return(tree.cell, nil)
		fx.locationRepo.EXPECT().CountChildren(ctx, tree.cell.ID).Return(int64(0), nil)
		fx.locationRepo.EXPECT().Delete(ctx, tree.cell.ID).Return(domainerrors.ErrHasChildren.WrapMessage("fk"))

		err := fx.service.DeleteLocation(ctx, tree.cell.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrHasChildren))
	})

	t.Run("childless", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByID(ctx, tree.village.ID).Return(tree.village, nil)
		fx.locationRepo.EXPECT().CountChildren(ctx, tree.village.ID).Return(int64(0), nil)
		fx.locationRepo.EXPECT().Delete(ctx, tree.village.ID).Return(nil)
		fx.cache.EXPECT().Delete(ctx, tree.village.Code).Return(nil)

		require.NoError(t, fx.service.DeleteLocation(ctx, tree.village.ID))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.locationRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrLocationNotFound)

		err := fx.service.DeleteLocation(ctx, id)

		assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	})
}

func TestLocationService_RenameLocation_InvalidatesSubtree(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	tree := buildKigali()

	fx.locationRepo.EXPECT().FindByCode(ctx, "K1-D1-S1").Return(tree.sector, nil)
	fx.locationRepo.EXPECT().UpdateName(ctx, tree.sector.ID, "Remera Nshya").Return(nil)
	fx.locationRepo.EXPECT().FindDescendants(ctx, tree.sector.ID).Return([]*entity.Location{tree.cell, tree.village}, nil)
	fx.cache.EXPECT().Delete(ctx, "K1-D1-S1", "K1-D1-S1-C1", "K1-D1-S1-C1-V1").Return(nil)

	location, err := fx.service.RenameLocation(ctx, "K1-D1-S1", "  Remera Nshya ")

	require.NoError(t, err)
	assert.Equal(t, "Remera Nshya", location.Name)
	assert.Equal(t, "K1-D1-S1", location.Code)
}

func TestLocationService_RenameLocation_NameTooLong(t *testing.T) {
	fx := createTestLocationService(t)

	_, err := fx.service.RenameLocation(context.Background(), "K1", strings.Repeat("n", entity.MaxLocationNameLength+1))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
}

func TestLocationService_ChildrenOf(t *testing.T) {
	tree := buildKigali()

	t.Run("roots when parent is empty", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().
			FindAll(ctx, repository.LocationFilter{RootsOnly: true}).
			Return([]*entity.Location{tree.province}, nil)

		children, err := fx.service.ChildrenOf(ctx, "", nil)

		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, "K1", children[0].Code)
	})

	t.Run("children of type", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()
		districtType := entity.LocationDistrict

		fx.locationRepo.EXPECT().FindByCode(ctx, "K1").Return(tree.province, nil)
		fx.locationRepo.EXPECT().
			FindAll(ctx, repository.LocationFilter{Type: &districtType, ParentID: &tree.province.ID}).
			Return([]*entity.Location{tree.district, tree.otherDistrict}, nil)

		children, err := fx.service.ChildrenOf(ctx, "K1", &districtType)

		require.NoError(t, err)
		assert.Len(t, children, 2)
	})
}

func TestLocationService_ListLocations_ClampsPage(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	tree := buildKigali()

	fx.locationRepo.EXPECT().
		List(ctx, repository.LocationFilter{}, entity.PageRequest{Page: 0, Size: 100}).
		Return([]*entity.Location{tree.province}, int64(1), nil)

	page, err := fx.service.ListLocations(ctx, nil, entity.PageRequest{Page: -3, Size: 5000})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 100, page.Size)
}

func TestLocationService_AncestorOfType(t *testing.T) {
	tree := buildKigali()

	t.Run("province of village", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.village.Code).Return(tree.village, nil)
		fx.locationRepo.EXPECT().FindAncestry(ctx, tree.village.ID).Return([]*entity.Location{
			tree.village, tree.cell, tree.sector, tree.district, tree.province,
		}, nil)

		ancestor, ok, err := fx.service.AncestorOfType(ctx, tree.village.Code, entity.LocationProvince)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "K1", ancestor.Code)
	})

	t.Run("own type returns the node", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.sector.Code).Return(tree.sector, nil)

		ancestor, ok, err := fx.service.AncestorOfType(ctx, tree.sector.Code, entity.LocationSector)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Same(t, tree.sector, ancestor)
	})

	t.Run("deeper type has no ancestor", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.district.Code).Return(tree.district, nil)

		_, ok, err := fx.service.AncestorOfType(ctx, tree.district.Code, entity.LocationVillage)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLocationService_FullPath(t *testing.T) {
	tree := buildKigali()
	want := "Kigali City / Gasabo / Remera / Rukiri I / Amahoro"

	t.Run("cache miss renders and stores", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.village.Code).Return(tree.village, nil)
		fx.cache.EXPECT().Get(ctx, tree.village.Code).Return("", service.ErrCacheMiss)
		fx.locationRepo.EXPECT().FindAncestry(ctx, tree.village.ID).Return([]*entity.Location{
			tree.province, tree.village, tree.sector, tree.cell, tree.district,
		}, nil)
		fx.cache.EXPECT().Set(ctx, tree.village.Code, want).Return(nil)

		path, err := fx.service.FullPath(ctx, tree.village.Code)

		require.NoError(t, err)
		assert.Equal(t, want, path.Path)
	})

	t.Run("cache hit skips the tree", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.village.Code).Return(tree.village, nil)
		fx.cache.EXPECT().Get(ctx, tree.village.Code).Return(want, nil)

		path, err := fx.service.FullPath(ctx, tree.village.Code)

		require.NoError(t, err)
		assert.Equal(t, want, path.Path)
		fx.locationRepo.AssertNotCalled(t, "FindAncestry", mock.Anything, mock.Anything)
	})

	t.Run("cache failure falls back", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.province.Code).Return(tree.province, nil)
		fx.cache.EXPECT().Get(ctx, tree.province.Code).Return("", errors.New("connection refused"))
		fx.locationRepo.EXPECT().FindAncestry(ctx, tree.province.ID).Return([]*entity.Location{tree.province}, nil)
		fx.cache.EXPECT().Set(ctx, tree.province.Code, "Kigali City").Return(errors.New("connection refused"))

		path, err := fx.service.FullPath(ctx, tree.province.Code)

		require.NoError(t, err)
		assert.Equal(t, "Kigali City", path.Path)
	})

	t.Run("broken chain", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().FindByCode(ctx, tree.cell.Code).Return(tree.cell, nil)
		fx.cache.EXPECT().Get(ctx, tree.cell.Code).Return("", service.ErrCacheMiss)
		fx.locationRepo.EXPECT().FindAncestry(ctx, tree.cell.ID).Return([]*entity.Location{tree.cell, tree.province}, nil)

		_, err := fx.service.FullPath(ctx, tree.cell.Code)

		assert.Error(t, err)
	})
}

func TestLocationService_UsersByAncestor(t *testing.T) {
	tree := buildKigali()
	gasaboUser := &entity.User{ID: uuid.New(), FullName: "Aline", LocationID: &tree.village.ID, Location: tree.village}
	kicukiroUser := &entity.User{ID: uuid.New(), FullName: "Eric", LocationID: &tree.otherDistrict.ID, Location: tree.otherDistrict}

	t.Run("users under different districts of one province", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()
		subtree := []uuid.UUID{tree.province.ID, tree.district.ID, tree.otherDistrict.ID, tree.sector.ID, tree.cell.ID, tree.village.ID}

		fx.locationRepo.EXPECT().
			FindByTypeAndMatch(ctx, entity.LocationProvince, "Kigali City", entity.MatchByName).
			Return([]*entity.Location{tree.province}, nil)
		fx.locationRepo.EXPECT().FindSubtreeIDs(ctx, []uuid.UUID{tree.province.ID}).Return(subtree, nil)
		fx.userRepo.EXPECT().FindByLocationIDs(ctx, subtree).Return([]*entity.User{gasaboUser, kicukiroUser}, nil)
		fx.locationRepo.EXPECT().
			FindAncestries(ctx, []uuid.UUID{tree.village.ID, tree.otherDistrict.ID}).
			Return(tree.all(), nil)

		results, err := fx.service.UsersByAncestor(ctx, usecase.UsersByAncestorInput{
			AncestorType: entity.LocationProvince,
			Match:        "Kigali City",
			By:           entity.MatchByName,
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, gasaboUser, results[0].User)
		assert.Same(t, tree.village, results[0].Location)
		assert.Equal(t, "Kigali City / Gasabo / Remera / Rukiri I / Amahoro", results[0].Path)
		assert.Equal(t, "Kigali City / Kicukiro", results[1].Path)
	})

	t.Run("no matching ancestor", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		fx.locationRepo.EXPECT().
			FindByTypeAndMatch(ctx, entity.LocationProvince, "Atlantis", entity.MatchByAny).
			Return([]*entity.Location{}, nil)

		results, err := fx.service.UsersByAncestor(ctx, usecase.UsersByAncestorInput{
			AncestorType: entity.LocationProvince,
			Match:        "Atlantis",
		})

		require.NoError(t, err)
		assert.Empty(t, results)
		fx.userRepo.AssertNotCalled(t, "FindByLocationIDs", mock.Anything, mock.Anything)
	})

	t.Run("invalid input", func(t *testing.T) {
		fx := createTestLocationService(t)
		ctx := context.Background()

		_, err := fx.service.UsersByAncestor(ctx, usecase.UsersByAncestorInput{AncestorType: entity.LocationProvince, Match: "K1", By: "zip"})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = fx.service.UsersByAncestor(ctx, usecase.UsersByAncestorInput{AncestorType: entity.LocationProvince})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
