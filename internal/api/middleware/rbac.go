package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces the per-route role allow-list. Roles are flat: an
// administrator is not implicitly a user, every permitted role must be
// enumerated. RBAC assumes Auth ran first; authentication and
// authorization stay independently attachable per route.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
