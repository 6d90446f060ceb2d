package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/domain"
)

func contextWithUser(e *echo.Echo, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserKey, user)
	}
	return c, rec
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, &domain.User{ID: "u1", Role: domain.RoleInvestor})

	called := false
	handler := RBAC(domain.RoleInvestor, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("called=%v code=%d", called, rec.Code)
	}
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, &domain.User{ID: "u1", Role: domain.RoleInnovator})

	handler := RBAC(domain.RoleInvestor)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "insufficient permissions") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestRBAC_MissingUser(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, nil)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
