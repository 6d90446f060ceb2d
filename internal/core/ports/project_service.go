package ports

import (
	"context"
	"time"

	"github.com/innovest/platform/internal/core/domain"
)

// CreateProjectInput carries the data for a new funding proposal. The owner
// is always the authenticated caller, never client input.
type CreateProjectInput struct {
	Title         string
	Description   string
	Industry      string
	ProjectStage  string
	FundingNeeded float64
	InnovatorID   string
}

// InnovatorSummary is the owner identity resolved inline on project listings.
type InnovatorSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// LikeSummary is the reduced investor view shown on an innovator's own projects.
type LikeSummary struct {
	ID        string
	FirstName string
	LastName  string
}

// InterestSummary is the investor profile shown to a project's owner.
type InterestSummary struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	InvestmentFocus string
	InvestmentRange string
}

// ProjectView is a project with its owning innovator resolved.
type ProjectView struct {
	Project   *domain.Project
	Innovator InnovatorSummary
}

// OwnProjectView is an innovator's project with engagement sets resolved to
// profile summaries instead of bare ids.
type OwnProjectView struct {
	Project             *domain.Project
	Likes               []LikeSummary
	InterestedInvestors []InterestSummary
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Likes    int
	HasLiked bool
}

// InterestResult reports the outcome of an interest registration.
type InterestResult struct {
	InterestedInvestors  int
	HasExpressedInterest bool
}

// RecommendedProject is a lightweight project card on the investor dashboard.
type RecommendedProject struct {
	ID            string
	Title         string
	Description   string
	Industry      string
	ProjectStage  string
	FundingNeeded float64
	Innovator     string
	CreatedAt     time.Time
}

// InvestorDashboard aggregates an investor's engagement, recomputed per request.
type InvestorDashboard struct {
	Liked           int
	Interested      int
	Recommendations []RecommendedProject
}

// InnovatorDashboard aggregates an innovator's traction, recomputed per request.
type InnovatorDashboard struct {
	TotalProjects       int
	TotalLikes          int
	InterestedInvestors []InterestSummary
}

// ProjectService defines the use-case operations around projects.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]ProjectView, error)
	ListOwnProjects(ctx context.Context, innovatorID string) ([]OwnProjectView, error)
	ToggleLike(ctx context.Context, projectID, investorID string) (*LikeResult, error)
	ExpressInterest(ctx context.Context, projectID, investorID string) (*InterestResult, error)
	InvestorDashboard(ctx context.Context, investorID string) (*InvestorDashboard, error)
	InnovatorDashboard(ctx context.Context, innovatorID string) (*InnovatorDashboard, error)
}
