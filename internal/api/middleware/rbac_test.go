package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ladob/catalog-api/internal/core/domain"
)

func newAuthzContext(p *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(principalKey, p)
	}
	return c
}

func TestRequireAuth_Allows(t *testing.T) {
	c := newAuthzContext(&domain.Principal{Email: "a@b.com", Role: domain.RoleUser, Authorities: []string{domain.RoleUser}})

	called := false
	handler := RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireAuth_Anonymous(t *testing.T) {
	c := newAuthzContext(nil)

	handler := RequireAuth()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireAuthority_Allows(t *testing.T) {
	c := newAuthzContext(&domain.Principal{Email: "a@b.com", Role: domain.RoleAdmin, Authorities: []string{domain.RoleAdmin}})

	called := false
	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireAuthority_Forbids(t *testing.T) {
	c := newAuthzContext(&domain.Principal{Email: "a@b.com", Role: domain.RoleUser, Authorities: []string{domain.RoleUser}})

	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestRequireAuthority_Anonymous(t *testing.T) {
	c := newAuthzContext(nil)

	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
