package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the service's JWTs.
type Claims struct {
	UserID int64
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID int64) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken derives the storage hash for a refresh token string.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
