// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ListingHandler *handler.ListingHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	listingHandler *handler.ListingHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		listingHandler: params.ListingHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	meGroup := e.Group("/me", r.authMiddleware.Authenticate)
	{
		meGroup.DELETE("", r.userHandler.DeleteAccount)
		meGroup.GET("/listings", r.listingHandler.MyListings)
	}

	// Reads are public; writes require a bearer token and ownership is
	// checked by the use cases.
	listings := e.Group("/listings")
	auth := r.authMiddleware.Authenticate
	{
		listings.GET("", r.listingHandler.Index)
		listings.GET("/search", r.listingHandler.Search)
		listings.GET("/near", r.listingHandler.Near)
		listings.GET("/:id", r.listingHandler.Show)
		listings.POST("", r.listingHandler.Create, auth)
		listings.PATCH("/:id", r.listingHandler.Update, auth)
		listings.DELETE("/:id", r.listingHandler.Delete, auth)

		listings.POST("/:id/images", r.imageHandler.Upload, auth)
		listings.GET("/:id/images/:imageId", r.imageHandler.Show)
		listings.DELETE("/:id/images/:imageId", r.imageHandler.Delete, auth)
	}
}
