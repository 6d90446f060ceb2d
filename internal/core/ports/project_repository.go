package ports

import (
	"context"

	"github.com/innovest/platform/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects. All
// like/interest mutations are atomic set-membership updates on a single
// document, so two concurrent calls can never duplicate an id.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindAll returns every project, created_at descending.
	FindAll(ctx context.Context) ([]*domain.Project, error)
	// FindByInnovator returns the innovator's projects, created_at descending.
	FindByInnovator(ctx context.Context, innovatorID string) ([]*domain.Project, error)
	// FindLikedBy returns projects whose likes set contains the investor.
	FindLikedBy(ctx context.Context, investorID string) ([]*domain.Project, error)
	// FindInterestedIn returns projects whose interest set contains the investor.
	FindInterestedIn(ctx context.Context, investorID string) ([]*domain.Project, error)
	// FindRecent returns the newest projects up to limit.
	FindRecent(ctx context.Context, limit int) ([]*domain.Project, error)

	// ToggleLike flips the investor's membership in the likes set and returns
	// the project after the toggle plus the resulting membership state.
	ToggleLike(ctx context.Context, projectID, investorID string) (*domain.Project, bool, error)
	// AddInterest adds the investor to the interest set if absent. The bool
	// reports whether the id was newly added (false on repeat calls).
	AddInterest(ctx context.Context, projectID, investorID string) (*domain.Project, bool, error)
}
