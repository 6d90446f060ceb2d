package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/domain"
)

type stubResolver struct {
	users map[string]*domain.User
}

func (r *stubResolver) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func signToken(t *testing.T, secret, sub string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "alice@example.com",
		"role":  "investor",
		"exp":   time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com", Role: domain.RoleInvestor, Status: domain.StatusApproved},
	}}
	signed := signToken(t, "secret", "u1", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", resolver)(func(c echo.Context) error {
		called = true
		user, _ := c.Get(UserKey).(*domain.User)
		if user == nil || user.ID != "u1" {
			t.Fatalf("user not resolved into context: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ResolvesLiveRecord(t *testing.T) {
	// The token is only the subject pointer. Status changes after issuance
	// must be visible on the next request.
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleInvestor, Status: domain.StatusPending},
	}}
	signed := signToken(t, "secret", "u1", time.Hour)

	resolver.users["u1"].Status = domain.StatusRejected

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", resolver)(func(c echo.Context) error {
		user, _ := c.Get(UserKey).(*domain.User)
		if user.Status != domain.StatusRejected {
			t.Fatalf("stale status %q, want current record", user.Status)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_Unauthorized(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleInvestor, Status: domain.StatusApproved},
	}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "u1", time.Hour)},
		{"expired token", "Bearer " + signToken(t, "secret", "u1", -time.Hour)},
		{"unknown subject", "Bearer " + signToken(t, "secret", "gone", time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth("secret", resolver)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
