package handler

import (
	"log/slog"
	"net/http"

	"poison/internal/delivery/http/response"
	"poison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for drink catalog lookups.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchByName searches the catalog by drink name.
func (h *CatalogHandler) SearchByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'name' is required")
	}

	drinks, err := h.uc.SearchByName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drinks, "Drinks retrieved successfully")
}

// SearchByFirstLetter lists drinks starting with a single letter.
func (h *CatalogHandler) SearchByFirstLetter(c echo.Context) error {
	letter := c.Param("letter")

	drinks, err := h.uc.SearchByFirstLetter(c.Request().Context(), letter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drinks, "Drinks retrieved successfully")
}

// FilterByAlcoholicType lists drinks of the requested classification.
func (h *CatalogHandler) FilterByAlcoholicType(c echo.Context) error {
	kind := c.QueryParam("alcoholic")

	drinks, err := h.uc.FilterByAlcoholicType(c.Request().Context(), kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drinks, "Drinks retrieved successfully")
}

// SearchByIngredient searches catalog ingredients by name.
func (h *CatalogHandler) SearchByIngredient(c echo.Context) error {
	ingredient := c.QueryParam("name")
	if ingredient == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'ingredient' is required")
	}

	records, err := h.uc.SearchByIngredient(c.Request().Context(), ingredient)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Ingredients retrieved successfully")
}

// Random returns a random drink from the catalog.
func (h *CatalogHandler) Random(c echo.Context) error {
	drink, err := h.uc.Random(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drink, "Random drink retrieved successfully")
}
