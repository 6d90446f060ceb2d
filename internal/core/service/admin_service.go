package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/innovest/platform/internal/api/metrics"
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
	"github.com/innovest/platform/internal/notifications"
)

const recentDecisionsLimit = 5

// AdminService implements the approval workflow and its read models.
type AdminService struct {
	users       ports.UserRepository
	notify      notifications.Enqueuer
	frontendURL string
	log         zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	notify notifications.Enqueuer,
	frontendURL string,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, notify: notify, frontendURL: frontendURL, log: log}
}

// Stats recomputes the dashboard aggregates on every call.
func (s *AdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	total, err := s.users.CountNonAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	pending, err := s.users.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	investors, err := s.users.CountByRole(ctx, domain.RoleInvestor)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	innovators, err := s.users.CountByRole(ctx, domain.RoleInnovator)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	recent, err := s.users.FindRecentlyDecided(ctx, recentDecisionsLimit)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	return &ports.AdminStats{
		TotalUsers:       total,
		PendingApprovals: pending,
		Investors:        investors,
		Innovators:       innovators,
		RecentDecisions:  recent,
	}, nil
}

// PendingUsers lists the non-admin accounts waiting for review, newest first.
func (s *AdminService) PendingUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindNonAdmin(ctx, "", domain.StatusPending)
}

// ListUsers lists non-admin accounts with an optional role filter.
func (s *AdminService) ListUsers(ctx context.Context, roleFilter string) ([]*domain.User, error) {
	var role domain.Role
	if roleFilter != "" && roleFilter != "all" {
		role = domain.Role(roleFilter)
	}
	return s.users.FindNonAdmin(ctx, role, "")
}

// Approve transitions the account to approved and queues the approval mail.
func (s *AdminService) Approve(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.decide(ctx, userID, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	s.notify.Enqueue(notifications.ApprovalNotice(user, s.frontendURL))
	return user, nil
}

// Reject transitions the account to rejected and queues the rejection mail.
func (s *AdminService) Reject(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.decide(ctx, userID, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	s.notify.Enqueue(notifications.RejectionNotice(user))
	return user, nil
}

func (s *AdminService) decide(ctx context.Context, userID string, next domain.Status) (*domain.User, error) {
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.Role == domain.RoleAdmin {
		// admin accounts are not reviewable
		return nil, domain.ErrUserNotFound
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, next)
	}

	user, err := s.users.UpdateStatus(ctx, userID, next)
	if err != nil {
		return nil, err
	}

	metrics.DecisionsTotal.WithLabelValues(string(next)).Inc()
	s.log.Info().
		Str("user_id", user.ID).
		Str("status", string(next)).
		Msg("account decision recorded")
	return user, nil
}
