package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devlink/social-api/internal/api/middleware"
)

// UserID extracts the authenticated user id injected by the Auth middleware.
// An empty id means the middleware did not run on this route; fail fast with
// 401 before any service call.
func UserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return id, nil
}
