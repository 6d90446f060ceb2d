package domain

import (
	"errors"
	"time"
)

// Role identifies what a participant can do on the platform.
type Role string

const (
	RoleInvestor  Role = "investor"
	RoleInnovator Role = "innovator"
	RoleAdmin     Role = "admin"
)

// IsRegisterable reports whether the role may be chosen at registration.
// Admin accounts are only ever created by the bootstrap seed.
func (r Role) IsRegisterable() bool {
	return r == RoleInvestor || r == RoleInnovator
}

// Status is the approval gate on a non-admin account.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// validStatusTransitions defines the allowed account state machine. A decided
// account may be re-decided idempotently, but nothing ever goes back to pending.
var validStatusTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusApproved, StatusRejected},
	StatusRejected: {StatusRejected, StatusApproved},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdminAccount    = errors.New("not an admin account, use the standard login")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrPendingApproval    = errors.New("account is pending approval")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// InvestorProfile carries the fields only an investor account has.
type InvestorProfile struct {
	InvestmentFocus string `json:"investmentFocus"`
	InvestmentRange string `json:"investmentRange"`
}

// InnovatorProfile carries the fields only an innovator account has.
type InnovatorProfile struct {
	Industry     string `json:"industry"`
	ProjectStage string `json:"projectStage"`
}

// User models a platform participant. The role-specific profile is a tagged
// union keyed by Role: exactly one of Investor/Innovator is set for those
// roles, neither for admin.
type User struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	Phone        string            `json:"phone"`
	Bio          string            `json:"bio"`
	Role         Role              `json:"role"`
	Status       Status            `json:"status"`
	Investor     *InvestorProfile  `json:"investorProfile,omitempty"`
	Innovator    *InnovatorProfile `json:"innovatorProfile,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// FullName renders the display name used in notification mails.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CanAct reports whether the user may reach status-gated operations.
// Admins bypass the approval gate entirely.
func (u *User) CanAct() bool {
	return u.Role == RoleAdmin || u.Status == StatusApproved
}
