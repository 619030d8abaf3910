package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

// getUserIDFromContext extracts the authenticated user's id from the JWT
// claims stored by the auth middleware. Returns "" when unauthenticated.
func getUserIDFromContext(c echo.Context) string {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return ""
	}
	return claims.UserID
}
