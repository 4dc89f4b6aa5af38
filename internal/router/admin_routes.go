package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/handler"
	"github.com/iliyamo/habit-tracker/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1.  All
// routes require a valid JWT and the ADMIN role.  Admins manage user
// accounts, the category catalogue, the quote pool and can inspect
// every log in the system.
func RegisterAdmin(e *echo.Echo, users *handler.UserHandler, cats *handler.CategoryHandler, quotes *handler.QuoteHandler, logs *handler.LogHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin),
	)

	// ---- Users ----
	g.POST("/users", users.CreateByAdmin)
	g.GET("/users", users.List)

	// ---- Categories ----
	// Reads are public; only the mutating endpoints need ADMIN.
	g.POST("/categories", cats.Create)
	g.PUT("/categories/:id", cats.Update)
	g.PATCH("/categories/:id", cats.Update)
	g.DELETE("/categories/:id", cats.Delete)

	// ---- Quotes ----
	g.GET("/quotes", quotes.List)
	g.POST("/quotes", quotes.Create)
	g.PUT("/quotes/:id", quotes.Update)
	g.PATCH("/quotes/:id", quotes.Update)
	g.DELETE("/quotes/:id", quotes.Delete)

	// ---- Logs (system-wide) ----
	g.GET("/admin/logs", logs.ListAll)
}

// RegisterUserSelf registers the user endpoints that members may call
// on their own account (fetch and delete).  The handler enforces the
// admin-or-owner rule, so both roles pass through here.
func RegisterUserSelf(e *echo.Echo, users *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin, handler.RoleMember),
	)
	g.GET("/users/:id", users.Get)
	g.DELETE("/users/:id", users.Delete)
}
