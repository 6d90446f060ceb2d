package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/api/middleware"
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
)

type stubAuthService struct {
	registerFn   func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (string, *domain.User, error)
	adminLoginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.adminLoginFn(ctx, email, password)
}

func newAuthContext(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const registerBody = `{
	"firstName": "Alice",
	"lastName": "Chen",
	"email": "alice@example.com",
	"password": "s3cret-pass",
	"phone": "555-0101",
	"bio": "Angel investor",
	"role": "investor",
	"investmentFocus": "fintech",
	"investmentRange": "$50k-$250k"
}`

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "alice@example.com" || input.Role != domain.RoleInvestor {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Investor == nil || input.Investor.InvestmentFocus != "fintech" {
				t.Fatalf("investor profile not mapped: %+v", input.Investor)
			}
			if input.Innovator != nil {
				t.Fatalf("innovator profile set for investor registration")
			}
			return &domain.User{ID: "u1", Email: input.Email, Role: input.Role, Status: domain.StatusPending}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(e, "/api/auth/register", registerBody)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Registration successful! Awaiting admin approval." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newAuthContext(e, "/api/auth/register", "not-json")
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	// Innovator smuggling investor-only fields must fail validation.
	body := `{
		"firstName": "Ivan", "lastName": "Novak", "email": "ivan@example.com",
		"password": "s3cret-pass", "phone": "555-0102", "bio": "Builder",
		"role": "innovator", "industry": "cleantech", "projectStage": "prototype",
		"investmentFocus": "fintech"
	}`
	c, _ := newAuthContext(e, "/api/auth/register", body)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newAuthContext(e, "/api/auth/register", registerBody)
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passthrough, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "s3cret-pass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{
				ID:           "u1",
				Email:        email,
				Role:         domain.RoleInvestor,
				Status:       domain.StatusApproved,
				PasswordHash: "must-never-leak",
			}, nil
		},
	})

	c, rec := newAuthContext(e, "/api/auth/login", `{"email":"alice@example.com","password":"s3cret-pass"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "must-never-leak") {
		t.Fatalf("password hash serialized in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(e, "/api/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_AdminLogin_NonAdmin(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		adminLoginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrNotAdminAccount
		},
	})

	c, _ := newAuthContext(e, "/api/auth/admin/login", `{"email":"carol@example.com","password":"correct-pw"}`)
	if err := handler.AdminLogin(c); !errors.Is(err, domain.ErrNotAdminAccount) {
		t.Fatalf("expected ErrNotAdminAccount passthrough, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserKey, &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		Role:         domain.RoleInvestor,
		Status:       domain.StatusPending,
		PasswordHash: "must-never-leak",
	})

	handler := NewAuthHandler(&stubAuthService{})
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "must-never-leak") {
		t.Fatalf("password hash serialized in response")
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusPending) {
		t.Fatalf("status = %v", resp["status"])
	}
}
