package middleware

// identity.go holds helpers shared across middleware files.  userID
// renders the authenticated user's id for use in rate-limit and
// cache keys; unauthenticated requests all share the "guest" bucket.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userID returns the request's user identity as a string, or "guest"
// when JWTAuth has not populated the context.
func userID(c echo.Context) string {
	if uid, ok := c.Get("user_id").(uint64); ok && uid != 0 {
		return strconv.FormatUint(uid, 10)
	}
	return "guest"
}
