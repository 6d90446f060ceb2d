package ports

import (
	"context"

	"github.com/innovest/platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the unique
	// email index rejects the write.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs loads all users matching the given ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)

	// UpdateStatus atomically sets the status and refreshes updated_at on a
	// non-admin user, returning the updated record. Admin accounts are
	// invisible to this operation (domain.ErrUserNotFound).
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.User, error)

	// FindNonAdmin returns non-admin users, newest first. A non-empty role
	// narrows to that role; a non-empty status narrows to that status.
	FindNonAdmin(ctx context.Context, role domain.Role, status domain.Status) ([]*domain.User, error)
	// FindRecentlyDecided returns the most recently approved/rejected
	// non-admin users, ordered by updated_at descending.
	FindRecentlyDecided(ctx context.Context, limit int) ([]*domain.User, error)
	CountNonAdmin(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
