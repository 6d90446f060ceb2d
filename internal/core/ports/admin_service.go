package ports

import (
	"context"

	"github.com/innovest/platform/internal/core/domain"
)

// AdminStats is the admin dashboard read model. Pure aggregate queries,
// recomputed on every request.
type AdminStats struct {
	TotalUsers       int64
	PendingApprovals int64
	Investors        int64
	Innovators       int64
	RecentDecisions  []*domain.User
}

// AdminService covers the approval workflow and its read models.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	PendingUsers(ctx context.Context) ([]*domain.User, error)
	// ListUsers returns non-admin users; roleFilter "" or "all" means no filter.
	ListUsers(ctx context.Context, roleFilter string) ([]*domain.User, error)
	Approve(ctx context.Context, userID string) (*domain.User, error)
	Reject(ctx context.Context, userID string) (*domain.User, error)
}
