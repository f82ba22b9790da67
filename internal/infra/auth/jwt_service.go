package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"poison/config"
	"poison/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID int64) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token and returns its typed claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, tokenTypeAccess)
}

// ValidateRefreshToken checks a refresh token and returns its typed claims.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, tokenTypeRefresh)
}

// HashToken derives the storage hash for a refresh token string. Only the
// hash is persisted, so a leaked sessions table cannot replay tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.Claims{
		UserID: userID,
		Type:   tokenType,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  time.Now().Unix(),             // Issued At
		"exp":  time.Now().Add(ttl).Unix(),    // Expiration Time
		"type": tokenType,                     // Type of token (access or refresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
