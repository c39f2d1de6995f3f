package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/pkg/token"
)

// Context keys set by the auth middleware and read by handlers and RBAC.
const (
	ctxKeyClaims   = "claims"
	ctxKeyUserID   = "user_id"
	ctxKeyUsername = "username"
	ctxKeyRole     = "role"
)

// Auth requires a valid bearer session token and injects its claims into the
// request context. Used on API groups that must answer 401 in JSON form
// regardless of the route scope policy.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := token.Parse(raw, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			setClaims(c, claims)
			return next(c)
		}
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func setClaims(c echo.Context, claims *token.Claims) {
	c.Set(ctxKeyClaims, claims)
	c.Set(ctxKeyUserID, claims.UserID)
	c.Set(ctxKeyUsername, claims.Username)
	c.Set(ctxKeyRole, claims.Role)
}
