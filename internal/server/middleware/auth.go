package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

// AdminAuth guards admin-only routes with a bearer token. A token that
// verifies but lacks the admin role gets 403, everything else gets 401.
func AdminAuth(authUsecase *usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			claims, err := authUsecase.VerifyAdmin(tokenString)
			if err != nil {
				if errors.Is(err, usecase.ErrWrongRole) {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("admin", claims)
			return next(c)
		}
	}
}
