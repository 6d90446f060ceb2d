package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/domain"
)

func TestApproved_StatusGate(t *testing.T) {
	cases := []struct {
		name     string
		user     *domain.User
		wantCode int
		wantNext bool
	}{
		{"approved investor", &domain.User{Role: domain.RoleInvestor, Status: domain.StatusApproved}, http.StatusOK, true},
		{"pending investor", &domain.User{Role: domain.RoleInvestor, Status: domain.StatusPending}, http.StatusForbidden, false},
		{"rejected innovator", &domain.User{Role: domain.RoleInnovator, Status: domain.StatusRejected}, http.StatusForbidden, false},
		{"admin bypasses the gate", &domain.User{Role: domain.RoleAdmin, Status: domain.StatusApproved}, http.StatusOK, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c, rec := contextWithUser(e, tc.user)

			called := false
			handler := Approved()(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if called != tc.wantNext {
				t.Fatalf("next called = %v, want %v", called, tc.wantNext)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d", rec.Code, tc.wantCode)
			}
			if tc.wantCode == http.StatusForbidden && !strings.Contains(rec.Body.String(), "pending approval") {
				t.Fatalf("body = %q, want the pending-approval message", rec.Body.String())
			}
		})
	}
}

func TestApproved_MissingUser(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, nil)

	handler := Approved()(func(c echo.Context) error {
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
