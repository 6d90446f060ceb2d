package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/api/middleware"
	"github.com/innovest/platform/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its absence
// means a route was wired without the middleware; fail closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
