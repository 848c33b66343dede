package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devlink/social-api/internal/core/ports"
)

// TokenHeader is the custom request header carrying the bearer token.
const TokenHeader = "x-auth-token"

// ContextUserID is the echo context key the authenticated user id is stored
// under. Handlers read it through handler.UserID, never ambient state.
const ContextUserID = "user_id"

// Auth verifies the token from the x-auth-token header and injects the
// authenticated user id into the request context. Requests without a valid
// token are rejected with 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
