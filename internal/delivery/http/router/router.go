// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"poison/internal/delivery/http/middleware"
	"poison/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	FavoriteHandler     *handler.FavoriteHandler
	CatalogHandler      *handler.CatalogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	favoriteHandler     *handler.FavoriteHandler
	catalogHandler      *handler.CatalogHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		favoriteHandler:     params.FavoriteHandler,
		catalogHandler:      params.CatalogHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.accountHandler.GetProfile)
		userGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		userGroup.PUT("/password", r.accountHandler.ChangePassword)
		userGroup.DELETE("", r.accountHandler.DeleteAccount)

		userGroup.GET("/favorites", r.favoriteHandler.List)
		userGroup.POST("/favorites", r.favoriteHandler.Add)
		userGroup.DELETE("/favorites/:id", r.favoriteHandler.Remove)
	}

	// Catalog browsing also requires a logged-in caller
	drinkGroup := e.Group("/drinks")
	drinkGroup.Use(r.authMiddleware.Authenticate)
	{
		drinkGroup.GET("/search", r.catalogHandler.SearchByName)
		drinkGroup.GET("/letter/:letter", r.catalogHandler.SearchByFirstLetter)
		drinkGroup.GET("/filter", r.catalogHandler.FilterByAlcoholicType)
		drinkGroup.GET("/ingredient", r.catalogHandler.SearchByIngredient)
		drinkGroup.GET("/random", r.catalogHandler.Random)
	}
}
