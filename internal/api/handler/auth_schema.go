package handler

import (
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest carries a new account. The profile fields are conditionally
// required on the declared role, so an innovator cannot smuggle investor
// fields past validation and vice versa.
type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	Phone     string `json:"phone"     validate:"required"`
	Bio       string `json:"bio"       validate:"required,max=2000"`
	Role      string `json:"role"      validate:"required,oneof=investor innovator"`

	InvestmentFocus string `json:"investmentFocus" validate:"required_if=Role investor,excluded_unless=Role investor"`
	InvestmentRange string `json:"investmentRange" validate:"required_if=Role investor,excluded_unless=Role investor"`
	Industry        string `json:"industry"        validate:"required_if=Role innovator,excluded_unless=Role innovator"`
	ProjectStage    string `json:"projectStage"    validate:"required_if=Role innovator,excluded_unless=Role innovator"`
}

func (r registerRequest) toInput() ports.RegisterInput {
	in := ports.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Bio:       r.Bio,
		Role:      domain.Role(r.Role),
	}
	switch in.Role {
	case domain.RoleInvestor:
		in.Investor = &domain.InvestorProfile{
			InvestmentFocus: r.InvestmentFocus,
			InvestmentRange: r.InvestmentRange,
		}
	case domain.RoleInnovator:
		in.Innovator = &domain.InnovatorProfile{
			Industry:     r.Industry,
			ProjectStage: r.ProjectStage,
		}
	}
	return in
}

type registerResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse returns the bearer token and the profile view. The password
// hash never serializes (json:"-" on the domain type).
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
