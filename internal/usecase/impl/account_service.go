// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "poison/internal/delivery/context"
	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/domain/service"
	"poison/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The duplicate
// check and the insert share one transaction; the unique indexes on phone
// and email remain the backstop for concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "date of birth must be YYYY-MM-DD")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  dob,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Zip:          input.Zip,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		duplicate, err := userRepo.IsDuplicate(ctx, input.PhoneNumber, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check duplicate identity")
		}
		if duplicate {
			return errors.Wrap(domainerrors.ErrDuplicateIdentity, "phone number or email already registered")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// Login authenticates by email and password and establishes a session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown email is reported distinctly so the caller can be
			// directed to registration.
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newSession := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, newSession); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         usecase.NewProfile(user),
	}, nil
}

// RefreshSession issues a new access token using a live refresh token.
// The refresh token itself remains unchanged.
func (srv *accountService) RefreshSession(ctx context.Context, input *usecase.RefreshSessionInput) (*usecase.RefreshSessionOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshSessionOutput{AccessToken: accessToken}, nil
}

// Logout invalidates a session by deleting its refresh token. Deleting an
// unknown token succeeds, making logout idempotent.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the store.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// GetProfile returns the caller's profile.
func (srv *accountService) GetProfile(ctx context.Context, userID int64) (*usecase.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewProfile(user), nil
}

// UpdateProfile overwrites all mutable profile attributes in one transaction.
// The duplicate phone/email check is intentionally not re-run here; only the
// storage unique constraints guard against collisions with other users.
func (srv *accountService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*usecase.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Int64("userID", userID))

	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "date of birth must be YYYY-MM-DD")
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.DateOfBirth = dob
		user.Address = input.Address
		user.City = input.City
		user.State = input.State
		user.Zip = input.Zip
		user.PhoneNumber = input.PhoneNumber
		user.Email = input.Email

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return usecase.NewProfile(updated), nil
}

// ChangePassword verifies the current password before storing a new hash.
func (srv *accountService) ChangePassword(ctx context.Context, userID int64, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Int64("userID", userID))

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password is incorrect")
		}

		user.PasswordHash = newHash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store new password hash")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Int64("userID", userID), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteAccount verifies the password, then deletes the user, their favorites
// and their sessions in one transaction. Any failure rolls the whole
// cascade back.
func (srv *accountService) DeleteAccount(ctx context.Context, userID int64, input *usecase.DeleteAccountInput) error {
	srv.log(ctx).Info("Deleting account", slog.Int64("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		favoriteRepo := repoFactory.FavoriteRepo()
		refreshTokenRepo := repoFactory.RefreshTokenRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password confirmation failed")
		}

		// Ownership implies cascading deletion: no orphaned favorites or
		// sessions may survive the account.
		if err := favoriteRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user's favorites")
		}
		if err := refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user's sessions")
		}
		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Int64("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", userID))

	return nil
}
