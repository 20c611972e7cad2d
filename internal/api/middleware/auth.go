package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ladob/catalog-api/internal/core/domain"
	"github.com/ladob/catalog-api/internal/core/ports"
)

const principalKey = "principal"

// Authenticate builds the per-request authentication filter. When a valid
// bearer token is present it attaches a Principal to the request context;
// in every other case it lets the request continue anonymously. The filter
// never writes an error response itself — route-level authorization decides
// what an absent principal means.
func Authenticate(users ports.UserRepository, tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return next(c)
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			email := tokens.SubjectOf(token)
			if email == "" {
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return next(c)
			}
			if !tokens.IsValid(token, user) {
				return next(c)
			}

			c.Set(principalKey, domain.NewPrincipal(user))
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Authenticate, or nil when
// the request is anonymous.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
