package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/handler"
	"github.com/iliyamo/habit-tracker/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring poll this endpoint to verify the
	// service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new
	// access token without rotation.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT authentication.  The handler accepts
	// either a bearer token (revoke all sessions) or a refresh_token in
	// the body (revoke one session).
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(handler.RoleAdmin, handler.RoleMember))
	auth.GET("/me", a.Me)

	// Alias so clients can call /v1/logout as well.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints.  Guests
// can fetch a motivational quote and browse the category catalogue
// before signing up.
func RegisterPublic(e *echo.Echo, cats *handler.CategoryHandler, quotes *handler.QuoteHandler) {
	e.GET("/v1/quotes/random", quotes.Random)
	e.GET("/v1/categories", cats.List)
	e.GET("/v1/categories/:id", cats.Get)
}
