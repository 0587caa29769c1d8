// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userhub/config"
	"userhub/internal/delivery/api/middleware"
	"userhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
	ProfileHandler    *handler.ProfileHandler
	ListingHandler    *handler.ListingHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	credentialHandler *handler.CredentialHandler
	profileHandler    *handler.ProfileHandler
	listingHandler    *handler.ListingHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		credentialHandler: params.CredentialHandler,
		profileHandler:    params.ProfileHandler,
		listingHandler:    params.ListingHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential routes, throttled per client IP
	userGroup := e.Group("/user")
	userGroup.Use(middleware.NewRateLimiter(r.config.HTTP.RateLimit))
	{
		userGroup.POST("/register", r.credentialHandler.Register)
		userGroup.POST("/login", r.credentialHandler.Login)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/:id", r.profileHandler.GetProfile)
		profileGroup.PUT("/:id", r.profileHandler.EditProfile)
		profileGroup.GET("/:id/card", r.profileHandler.ProfileCard)
	}

	e.GET("/profiles", r.listingHandler.ListProfiles, r.authMiddleware.Authenticate)

	// Photos are public, addressed by asset name only
	e.GET("/photos/:name", r.profileHandler.GetPhoto)
}
