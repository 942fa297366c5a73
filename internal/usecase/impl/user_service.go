package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"bookstore/config"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	paths        *pathResolver
	cfg          *config.Config
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	LocationRepo repository.LocationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	PathCache    service.LocationPathCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		locationRepo: params.LocationRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		paths: &pathResolver{
			locationRepo: params.LocationRepo,
			cache:        params.PathCache,
			separator:    pathSeparator(params.Config),
			logger:       params.Logger,
		},
		cfg:    params.Config,
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account. Email uniqueness is enforced by the store.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
	}
	if err := checkLength("full name", fullName, entity.MaxFullNameLength); err != nil {
		return nil, err
	}
	if err := checkLength("email", email, entity.MaxEmailLength); err != nil {
		return nil, err
	}
	phone := strings.TrimSpace(input.Phone)
	if err := checkLength("phone", phone, entity.MaxPhoneLength); err != nil {
		return nil, err
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	now := srv.now()
	user := &entity.User{
		ID:        uuid.New(),
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		Role:      entity.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if code := strings.TrimSpace(input.LocationCode); code != "" {
		location, err := srv.locationRepo.FindByCode(ctx, code)
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location code " + code)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user location")
		}
		user.LocationID = &location.ID
		user.Location = location
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown emails and wrong
// passwords are reported identically.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.upgradeHash(ctx, user, input.Password)
	}

	roles := entity.Roles{user.Role}
	token, err := srv.tokenService.GenerateAccessToken(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// GetUser retrieves a user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// GetUserWithLocation returns the user together with their location and its full path.
func (srv *userService) GetUserWithLocation(ctx context.Context, id uuid.UUID) (*entity.UserLocation, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	result := &entity.UserLocation{User: user, Location: user.Location}
	if user.Location == nil {
		return result, nil
	}

	path, err := srv.paths.fullPath(ctx, user.Location)
	if err != nil {
		return nil, err
	}
	result.Path = path

	return result, nil
}

// ListUsers returns one page of users.
func (srv *userService) ListUsers(ctx context.Context, filter repository.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + filter.Role.String())
	}

	page = normalizePage(srv.cfg, page)
	users, total, err := srv.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.NewPage(users, page, total), nil
}

// CountByRole returns the number of users holding role.
func (srv *userService) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	if !role.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
	}

	count, err := srv.userRepo.CountByRole(ctx, role)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// UpdateProfile changes the name and phone of a user.
func (srv *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("full name cannot be empty")
		}
		if err := checkLength("full name", name, entity.MaxFullNameLength); err != nil {
			return nil, err
		}
		user.FullName = name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if err := checkLength("phone", phone, entity.MaxPhoneLength); err != nil {
			return nil, err
		}
		user.Phone = phone
	}

	return srv.save(ctx, user)
}

// ChangePassword replaces the password of a user after verifying the current one.
func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, input usecase.ChangePasswordInput) error {
	if err := checkPassword(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash

	_, err = srv.save(ctx, user)

	return err
}

// ChangeRole grants role to a user.
func (srv *userService) ChangeRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role == role {
		return user, nil
	}
	user.Role = role

	srv.log(ctx).Info("User role changed", slog.String("userID", id.String()), slog.String("role", role.String()))

	return srv.save(ctx, user)
}

// AssignLocation attaches the user to the node with locationCode, or detaches them when the code is empty.
func (srv *userService) AssignLocation(ctx context.Context, id uuid.UUID, locationCode string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	locationCode = strings.TrimSpace(locationCode)
	if locationCode == "" {
		user.LocationID = nil
		user.Location = nil

		return srv.save(ctx, user)
	}

	location, err := srv.locationRepo.FindByCode(ctx, locationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}
	user.LocationID = &location.ID
	user.Location = location

	return srv.save(ctx, user)
}

// DeleteUser removes a user together with their cart, orders, payments and reviews.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

// upgradeHash re-hashes a verified password at the current cost. Failures only
// cost a log line; the login itself already succeeded.
func (srv *userService) upgradeHash(ctx context.Context, user *entity.User, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return
	}

	previous := user.PasswordHash
	user.PasswordHash = hash
	if _, err := srv.save(ctx, user); err != nil {
		user.PasswordHash = previous
		srv.log(ctx).Warn("Failed to store rehashed password", slog.String("userID", user.ID.String()), slog.Any("error", err))
	}
}

func (srv *userService) save(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = srv.now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}
