package middleware

import (
	"strings"

	deliverycontext "poison/internal/delivery/context"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// user ID on the context. Missing, malformed and expired tokens are all
// reported identically so callers cannot probe token state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired token")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
