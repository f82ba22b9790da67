// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "poison/internal/delivery/context"
	"poison/internal/delivery/http/response"
	"poison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh handles the access token refresh request.
func (h *AccountHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the logout request.
func (h *AccountHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// GetProfile returns the authenticated user's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile replaces the authenticated user's profile attributes.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// ChangePassword sets a new password after verifying the current one.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// DeleteAccount removes the authenticated user's account and everything
// they own.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.DeleteAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
