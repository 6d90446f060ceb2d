package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/domain"
)

// Approved gates status-protected operations. Admins always pass; everyone
// else needs an approved account. The pending message is deliberately
// distinct from a plain 403 so clients can route users to a waiting view.
func Approved() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.CanAct() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "your account is pending approval"})
			}
			return next(c)
		}
	}
}
