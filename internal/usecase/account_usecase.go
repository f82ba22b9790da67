// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"poison/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Field constraints mirror the persisted schema limits.
type RegisterInput struct {
	FirstName   string `json:"first_name" validate:"required,max=30"`
	LastName    string `json:"last_name" validate:"required,max=30"`
	DateOfBirth string `json:"dob" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" validate:"required,max=50"`
	City        string `json:"city" validate:"required,max=30"`
	State       string `json:"state" validate:"required,len=2,alpha"`
	Zip         string `json:"zip" validate:"required,len=5,numeric"`
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	Email       string `json:"email" validate:"required,email,max=40"`
	Password    string `json:"password" validate:"required,min=6,max=130"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshSessionInput carries the refresh token presented for renewal.
type RefreshSessionInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput carries the refresh token of the session being torn down.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileInput overwrites every mutable profile attribute in one shot,
// matching the profile-edit form of the account screens.
type UpdateProfileInput struct {
	FirstName   string `json:"first_name" validate:"required,max=30"`
	LastName    string `json:"last_name" validate:"required,max=30"`
	DateOfBirth string `json:"dob" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" validate:"required,max=50"`
	City        string `json:"city" validate:"required,max=30"`
	State       string `json:"state" validate:"required,len=2,alpha"`
	Zip         string `json:"zip" validate:"required,len=5,numeric"`
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	Email       string `json:"email" validate:"required,email,max=40"`
}

// ChangePasswordInput requires the current password before accepting a new one.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=130"`
}

// DeleteAccountInput requires password confirmation before destroying the account.
type DeleteAccountInput struct {
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// Profile is the outward-facing projection of a user; it never carries the
// password hash.
type Profile struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// RegisterOutput returns the newly created user's ID. Registration does not
// log the caller in; a subsequent login is required.
type RegisterOutput struct {
	UserID int64 `json:"user_id"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *Profile `json:"user"`
}

// RefreshSessionOutput returns a renewed access token.
type RefreshSessionOutput struct {
	AccessToken string `json:"access_token"`
}

// NewProfile projects a user entity into its outward-facing form.
func NewProfile(user *entity.User) *Profile {
	if user == nil {
		return nil
	}

	return &Profile{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		Address:     user.Address,
		City:        user.City,
		State:       user.State,
		Zip:         user.Zip,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
	}
}

// AccountUsecase defines the account and session operations the delivery
// layer depends on.
type AccountUsecase interface {
	// Register creates a new account. Fails with DuplicateIdentity when the
	// phone number or email is already taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates by email and password and establishes a session.
	// Unknown emails fail with AccountNotFound; wrong passwords with
	// InvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshSession issues a new access token for a live session.
	RefreshSession(ctx context.Context, input *RefreshSessionInput) (*RefreshSessionOutput, error)

	// Logout tears the session down; idempotent.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetProfile returns the caller's profile.
	GetProfile(ctx context.Context, userID int64) (*Profile, error)

	// UpdateProfile overwrites all mutable profile attributes in one transaction.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*Profile, error)

	// ChangePassword verifies the current password before storing a new hash.
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error

	// DeleteAccount verifies the password, then deletes the user, their
	// favorites and their sessions atomically.
	DeleteAccount(ctx context.Context, userID int64, input *DeleteAccountInput) error
}
