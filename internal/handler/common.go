package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Role names stored in users.role and in the JWT role claim.
const (
	RoleMember = "MEMBER"
	RoleAdmin  = "ADMIN"
)

// dbTimeout bounds the duration of database calls made by handlers.
const dbTimeout = 5 * time.Second

// reqContext derives a bounded context from the incoming request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUserID reads the authenticated user's id placed in context
// by the JWT middleware.  Returns 0 when unauthenticated.
func currentUserID(c echo.Context) uint64 {
	if uid, ok := c.Get("user_id").(uint64); ok {
		return uid
	}
	return 0
}

// currentRole reads the authenticated user's role, or "".
func currentRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok {
		return role
	}
	return ""
}

// parseDate parses a YYYY-MM-DD query value into midnight UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
