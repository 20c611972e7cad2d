package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ladob/catalog-api/internal/api/middleware"
)

// principalEmail returns the email of the authenticated principal attached by
// the authentication filter, or "" for anonymous requests. Handlers use it
// for audit logging only; access decisions happen in the routing layer.
func principalEmail(c echo.Context) string {
	if p := middleware.PrincipalFrom(c); p != nil {
		return p.Email
	}
	return ""
}
