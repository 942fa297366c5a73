package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	locationRepo *mockRepo.MockLocationRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	cache        *mockSvc.MockLocationPathCache
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	cache := mockSvc.NewMockLocationPathCache(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		LocationRepo: locationRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		PathCache:    cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cache:        cache,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	tree := buildKigali()

	input := usecase.RegisterUserInput{
		FullName:     "Aline Uwase",
		Email:        "  Aline@Example.com ",
		Password:     "Password123!",
		LocationCode: tree.village.Code,
	}

	fx.locationRepo.EXPECT().FindByCode(ctx, tree.village.Code).Return(tree.village, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, entity.RoleCustomer, user.Role)
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "aline@example.com", user.Email)
	require.NotNil(t, user.LocationID)
	assert.Equal(t, tree.village.ID, *user.LocationID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		FullName: "Aline",
		Email:    "aline@example.com",
		Password: "Password123!",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterUserInput
	}{
		{"missing name", usecase.RegisterUserInput{Email: "a@b.rw", Password: "Password123!"}},
		{"bad email", usecase.RegisterUserInput{FullName: "A", Email: "not-an-email", Password: "Password123!"}},
		{"short password", usecase.RegisterUserInput{FullName: "A", Email: "a@b.rw", Password: "short"}},
		{"name over column size", usecase.RegisterUserInput{FullName: strings.Repeat("é", entity.MaxFullNameLength+1), Email: "a@b.rw", Password: "Password123!"}},
		{"phone over column size", usecase.RegisterUserInput{FullName: "A", Email: "a@b.rw", Phone: strings.Repeat("7", entity.MaxPhoneLength+1), Password: "Password123!"}},
		// 40 runes but 80 bytes: within the handler's max=72 tag, beyond bcrypt's limit.
		{"multibyte password over bcrypt limit", usecase.RegisterUserInput{FullName: "A", Email: "a@b.rw", Password: strings.Repeat("ü", 40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestUserService_Register_UnknownLocation(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().FindByCode(ctx, "ZZ").Return(nil, domainerrors.ErrLocationNotFound)

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		FullName:     "Aline",
		Email:        "aline@example.com",
		Password:     "Password123!",
		LocationCode: "ZZ",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "aline@example.com", PasswordHash: "hash", Role: entity.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "aline@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
		fx.hasher.EXPECT().NeedsRehash("hash").Return(false)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"ADMIN"}).Return("token", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ALINE@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, int64(900), out.ExpiresIn)
		assert.Same(t, user, out.User)
	})

	t.Run("upgrades weak hash", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		weak := &entity.User{ID: uuid.New(), Email: "eric@example.com", PasswordHash: "weak", Role: entity.RoleCustomer}

		fx.userRepo.EXPECT().FindByEmail(ctx, "eric@example.com").Return(weak, nil)
		fx.hasher.EXPECT().Check("Password123!", "weak").Return(true)
		fx.hasher.EXPECT().NeedsRehash("weak").Return(true)
		fx.hasher.EXPECT().Hash("Password123!").Return("strong", nil)
		fx.userRepo.EXPECT().Update(ctx, weak).Return(nil)
		fx.tokenService.EXPECT().GenerateAccessToken(weak.ID, []string{"CUSTOMER"}).Return("token", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "eric@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, "strong", weak.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "aline@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "aline@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever1"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_GetUserWithLocation(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	tree := buildKigali()
	user := &entity.User{ID: uuid.New(), LocationID: &tree.sector.ID, Location: tree.sector}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cache.EXPECT().Get(ctx, tree.sector.Code).Return("", service.ErrCacheMiss)
	fx.locationRepo.EXPECT().FindAncestry(ctx, tree.sector.ID).Return([]*entity.Location{tree.sector, tree.district, tree.province}, nil)
	fx.cache.EXPECT().Set(ctx, tree.sector.Code, "Kigali City / Gasabo / Remera").Return(nil)

	result, err := fx.service.GetUserWithLocation(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "Kigali City / Gasabo / Remera", result.Path)
	assert.Same(t, tree.sector, result.Location)
}

func TestUserService_AssignLocation(t *testing.T) {
	tree := buildKigali()

	t.Run("attach", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New()}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.locationRepo.EXPECT().FindByCode(ctx, tree.cell.Code).Return(tree.cell, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.AssignLocation(ctx, user.ID, tree.cell.Code)

		require.NoError(t, err)
		require.NotNil(t, updated.LocationID)
		assert.Equal(t, tree.cell.ID, *updated.LocationID)
	})

	t.Run("detach", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), LocationID: &tree.cell.ID, Location: tree.cell}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.AssignLocation(ctx, user.ID, "")

		require.NoError(t, err)
		assert.False(t, updated.HasLocation())
	})
}

func TestUserService_ChangeRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	_, err := fx.service.ChangeRole(ctx, user.ID, "ROOT")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.ChangeRole(ctx, user.ID, entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestUserService_ChangePassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Twice()
	fx.hasher.EXPECT().Check("wrong-password", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: "wrong-password", NewPassword: "NewPassword1"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	fx.hasher.EXPECT().Check("OldPassword1", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err = fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: "OldPassword1", NewPassword: "NewPassword1"})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestUserService_ChangePassword_RejectsOverlongPassword(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), usecase.ChangePasswordInput{
		CurrentPassword: "OldPassword1",
		NewPassword:     strings.Repeat("ü", 40),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
}

func TestUserService_UpdateProfile_RejectsOverlongFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Aline", Phone: "0788000000"}
	longName := strings.Repeat("a", entity.MaxFullNameLength+1)
	longPhone := strings.Repeat("7", entity.MaxPhoneLength+1)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Twice()

	_, err := fx.service.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{FullName: &longName})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)

	_, err = fx.service.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{Phone: &longPhone})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
	assert.Equal(t, "Aline", user.FullName)
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, id).Return(domainerrors.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
