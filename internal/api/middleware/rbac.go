package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// RBAC restricts a route to the given roles. It reads the role injected by
// Auth (or the route scope gate) and answers 403 on a mismatch. A deny is a
// normal response, not an error: it happens on every wrong-role browse.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ctxKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
