package ports

import (
	"context"

	"github.com/innovest/platform/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. Exactly one
// of Investor/Innovator must be set, matching Role.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Bio       string
	Role      domain.Role
	Investor  *domain.InvestorProfile
	Innovator *domain.InnovatorProfile
}

// AuthService implements registration and the two login entry points.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates a non-admin account. Unknown email, wrong password
	// and admin accounts all fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AdminLogin authenticates through the admin entry point. A resolved
	// non-admin account fails with domain.ErrNotAdminAccount so the client
	// can route to the standard login.
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
}
