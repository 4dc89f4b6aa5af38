package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/handler"
	"github.com/iliyamo/habit-tracker/internal/middleware"
)

// RegisterMember registers member-scoped endpoints under /v1.  All
// routes require a valid JWT; both roles are accepted because admins
// track habits of their own too.  Members manage their habits, record
// check-ins and browse their log history.
func RegisterMember(e *echo.Echo, habits *handler.HabitHandler, logs *handler.LogHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin, handler.RoleMember),
	)

	// ---- Habits ----
	g.POST("/habits", habits.Create)
	g.GET("/habits", habits.List)
	g.GET("/habits/:id", habits.Get)
	g.PUT("/habits/:id", habits.Update)
	g.PATCH("/habits/:id", habits.Update)
	g.DELETE("/habits/:id", habits.Delete)
	g.GET("/habits/:id/streak", habits.Streak)

	// ---- Check-ins and history ----
	g.POST("/logs", logs.CheckIn)
	g.GET("/habits/:id/logs", logs.HistoryByHabit)
	g.GET("/logs", logs.ListMine)
	g.PUT("/logs/:id", logs.Update)
	g.PATCH("/logs/:id", logs.Update)
	g.DELETE("/logs/:id", logs.Delete)
}

// RegisterStats registers the adherence endpoints under /v1/stats.
// The extra middlewares (typically the Redis response cache) apply to
// the read endpoints only; the auto-fail trigger writes rows and must
// never be served from cache.
func RegisterStats(e *echo.Echo, s *handler.StatsHandler, jwtSecret string, cached ...echo.MiddlewareFunc) {
	g := e.Group(
		"/v1/stats",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin, handler.RoleMember),
	)
	g.GET("/daily", s.Daily, cached...)
	g.GET("/heatmap", s.Heatmap, cached...)
	g.POST("/auto-fail", s.AutoFail)
}
