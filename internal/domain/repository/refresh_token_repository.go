package repository

import (
	"context"
	"errors"

	"poison/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no session matches the given hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// ErrRefreshTokenExpired is returned when a matching session exists but has lapsed.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// RefreshTokenRepository defines persistence operations for session records.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a live session by its token hash.
	// Returns ErrRefreshTokenExpired for sessions past their expiry.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a session by its token hash. Deleting a hash that
	// does not exist is not an error, which makes logout idempotent.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every session bound to the user.
	DeleteByUserID(ctx context.Context, userID int64) error
}
