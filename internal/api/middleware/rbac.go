package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ladob/catalog-api/internal/api/metrics"
	"github.com/ladob/catalog-api/internal/core/domain"
)

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireAuthority enforces role-based access control. Anonymous requests
// fail with 401, authenticated requests without the authority with 403.
func RequireAuthority(authority string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			if !p.HasAuthority(authority) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrAccessDenied
			}
			return next(c)
		}
	}
}
