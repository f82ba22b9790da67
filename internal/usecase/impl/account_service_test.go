package impl

import (
	"context"
	"testing"
	"time"

	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:   "Joe",
		LastName:    "Bloggs",
		DateOfBirth: "1990-04-01",
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		Zip:         "62701",
		PhoneNumber: "5551234567",
		Email:       "joe@example.com",
		Password:    "s3cret!",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed", nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("IsDuplicate", ctx, input.PhoneNumber, input.Email).Return(false, nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == input.Email && u.PasswordHash == "hashed"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 42
	}).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	fx.userRepo.AssertExpectations(t)
}

func TestAccountService_Register_DuplicateIdentity(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed", nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("IsDuplicate", ctx, input.PhoneNumber, input.Email).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_BadDateOfBirth(t *testing.T) {
	fx := newAccountServiceFixture()
	input := validRegisterInput()
	input.DateOfBirth = "01/04/1990"

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "joe@example.com", PasswordHash: "hashed"}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "s3cret!", "hashed").Return(true)
	fx.tokenService.On("GenerateTokens", int64(7)).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.tokenRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.RefreshToken) bool {
		return s.UserID == 7 && s.TokenHash == "refresh-hash" && s.ExpiresAt.After(time.Now())
	})).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.Equal(t, int64(7), output.User.ID)
	fx.tokenRepo.AssertExpectations(t)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "joe@example.com", PasswordHash: "hashed"}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything)
}

func TestAccountService_RefreshSession_Success(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh").
		Return(&mockClaims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenRepo.On("FindByHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: 7, TokenHash: "refresh-hash"}, nil)
	fx.tokenService.On("GenerateTokens", int64(7)).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAccountService_RefreshSession_UnknownToken(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh").Return(&mockClaims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenRepo.On("FindByHash", ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestAccountService_RefreshSession_ExpiredToken(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh").Return(&mockClaims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenRepo.On("FindByHash", ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenExpired)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestAccountService_Logout_IsIdempotent(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh").Return(&mockClaims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	// DeleteByHash succeeds whether or not the session row exists.
	fx.tokenRepo.On("DeleteByHash", ctx, "refresh-hash").Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	profile, err := fx.service.GetProfile(ctx, 99)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_GetProfile_OmitsPasswordHash(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{
		ID:           7,
		FirstName:    "Joe",
		LastName:     "Bloggs",
		DateOfBirth:  time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
		Email:        "joe@example.com",
		PasswordHash: "hashed",
	}

	fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)

	profile, err := fx.service.GetProfile(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "1990-04-01", profile.DateOfBirth)
	assert.Equal(t, "joe@example.com", profile.Email)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	existing := &entity.User{ID: 7, Email: "old@example.com", PasswordHash: "hashed"}
	input := &usecase.UpdateProfileInput{
		FirstName:   "Joe",
		LastName:    "Bloggs",
		DateOfBirth: "1990-04-01",
		Address:     "2 Side St",
		City:        "Springfield",
		State:       "IL",
		Zip:         "62701",
		PhoneNumber: "5559876543",
		Email:       "new@example.com",
	}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == "hashed"
	})).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
}

func TestAccountService_UpdateProfile_DuplicateFromConstraint(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	existing := &entity.User{ID: 7, Email: "old@example.com"}
	input := &usecase.UpdateProfileInput{
		FirstName:   "Joe",
		LastName:    "Bloggs",
		DateOfBirth: "1990-04-01",
		Email:       "taken@example.com",
	}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)
	fx.userRepo.On("Update", ctx, mock.Anything).
		Return(domainerrors.ErrDuplicateIdentity.WrapMessage("email already exists"))

	profile, err := fx.service.UpdateProfile(ctx, 7, input)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAccountService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, PasswordHash: "hashed"}

	fx.hasher.On("Hash", "newpass").Return("new-hash", nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	err := fx.service.ChangePassword(ctx, 7, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "newpass",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, PasswordHash: "hashed"}

	fx.hasher.On("Hash", "newpass").Return("new-hash", nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)
	fx.hasher.On("Check", "current", "hashed").Return(true)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "new-hash"
	})).Return(nil)

	err := fx.service.ChangePassword(ctx, 7, &usecase.ChangePasswordInput{
		CurrentPassword: "current",
		NewPassword:     "newpass",
	})

	assert.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestAccountService_DeleteAccount_CascadesOwnedRows(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, PasswordHash: "hashed"}
	favoriteRepo := fx.favoriteRepoForFactory()

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("RefreshTokenRepo").Return(fx.tokenRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)
	fx.hasher.On("Check", "s3cret!", "hashed").Return(true)
	favoriteRepo.On("DeleteByUserID", ctx, int64(7)).Return(nil)
	fx.tokenRepo.On("DeleteByUserID", ctx, int64(7)).Return(nil)
	fx.userRepo.On("Delete", ctx, int64(7)).Return(nil)

	err := fx.service.DeleteAccount(ctx, 7, &usecase.DeleteAccountInput{Password: "s3cret!"})

	assert.NoError(t, err)
	favoriteRepo.AssertExpectations(t)
	fx.tokenRepo.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestAccountService_DeleteAccount_WrongPassword(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()
	user := &entity.User{ID: 7, PasswordHash: "hashed"}
	favoriteRepo := fx.favoriteRepoForFactory()

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("RefreshTokenRepo").Return(fx.tokenRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	err := fx.service.DeleteAccount(ctx, 7, &usecase.DeleteAccountInput{Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	favoriteRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
