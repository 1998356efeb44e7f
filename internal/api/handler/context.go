package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// ctxClaims extracts the verified claims injected by the Auth middleware.
// Absence proves the middleware did not run on this route; fail closed.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get("claims").(*domain.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
