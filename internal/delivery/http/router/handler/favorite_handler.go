package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "poison/internal/delivery/context"
	"poison/internal/delivery/http/response"
	"poison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for the favorites ledger handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add saves a catalog drink to the authenticated user's favorites.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.AddFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Add(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// A repeat save is acknowledged with 200 instead of 201.
	if output.AlreadyExists {
		return response.Success(c, http.StatusOK, output, "Drink is already a favorite")
	}

	return response.Success(c, http.StatusCreated, output, "Favorite added successfully")
}

// Remove deletes one of the authenticated user's favorites by ID.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Favorite ID must be an integer")
	}

	output, err := h.uc.Remove(c.Request().Context(), favoriteID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Favorite removed successfully")
}

// List returns all of the authenticated user's favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}
