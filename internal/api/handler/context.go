package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/pkg/token"
)

// ctxClaims extracts the session claims injected by the auth middleware and
// fast-fails before any service call: a missing claims value means the
// middleware did not run or the token never verified, so the request must not
// reach business logic under an empty identity.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get("claims").(*token.Claims)
	if !ok || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
