package middleware

import (
	"net/http"

	"gowheels/internal/entity"

	"github.com/labstack/echo/v4"
)

// RequireRole guards a route group behind one of the marketplace roles. It
// assumes RequireAuth already ran; an unauthenticated request has no role in
// context and is rejected the same way as a wrong one.
func RequireRole(role entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok || currentRole != string(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
