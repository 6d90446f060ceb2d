package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/innovest/platform/internal/api/metrics"
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
	"github.com/innovest/platform/internal/notifications"
)

const recommendationLimit = 3

// ProjectService implements project creation and the investor engagement
// protocol on top of atomic set updates in the repository.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	notify   notifications.Enqueuer
	log      zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	users ports.UserRepository,
	notify notifications.Enqueuer,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{projects: projects, users: users, notify: notify, log: log}
}

// CreateProject persists a new proposal owned by the calling innovator.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Title:               input.Title,
		Description:         input.Description,
		Industry:            input.Industry,
		ProjectStage:        input.ProjectStage,
		FundingNeeded:       input.FundingNeeded,
		InnovatorID:         input.InnovatorID,
		Likes:               []string{},
		InterestedInvestors: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("innovator_id", input.InnovatorID).Msg("project created")
	return created, nil
}

// ListProjects returns every project, newest first, with the owning innovator
// resolved to summary fields.
func (s *ProjectService) ListProjects(ctx context.Context) ([]ports.ProjectView, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	owners, err := s.resolveUsers(ctx, collectIDs(projects, func(p *domain.Project) []string {
		return []string{p.InnovatorID}
	}))
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProjectView, 0, len(projects))
	for _, p := range projects {
		view := ports.ProjectView{Project: p}
		if owner, ok := owners[p.InnovatorID]; ok {
			view.Innovator = ports.InnovatorSummary{
				ID:        owner.ID,
				FirstName: owner.FirstName,
				LastName:  owner.LastName,
				Email:     owner.Email,
				Phone:     owner.Phone,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ListOwnProjects returns the caller's projects with the engagement sets
// resolved to profile summaries.
func (s *ProjectService) ListOwnProjects(ctx context.Context, innovatorID string) ([]ports.OwnProjectView, error) {
	projects, err := s.projects.FindByInnovator(ctx, innovatorID)
	if err != nil {
		return nil, err
	}

	investors, err := s.resolveUsers(ctx, collectIDs(projects, func(p *domain.Project) []string {
		return append(append([]string{}, p.Likes...), p.InterestedInvestors...)
	}))
	if err != nil {
		return nil, err
	}

	views := make([]ports.OwnProjectView, 0, len(projects))
	for _, p := range projects {
		view := ports.OwnProjectView{
			Project:             p,
			Likes:               make([]ports.LikeSummary, 0, len(p.Likes)),
			InterestedInvestors: make([]ports.InterestSummary, 0, len(p.InterestedInvestors)),
		}
		for _, id := range p.Likes {
			if u, ok := investors[id]; ok {
				view.Likes = append(view.Likes, ports.LikeSummary{
					ID:        u.ID,
					FirstName: u.FirstName,
					LastName:  u.LastName,
				})
			}
		}
		for _, id := range p.InterestedInvestors {
			if u, ok := investors[id]; ok {
				view.InterestedInvestors = append(view.InterestedInvestors, interestSummary(u))
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ToggleLike flips the investor's membership in the project's likes set and
// reports the resulting count and membership. Calling twice restores the
// original state.
func (s *ProjectService) ToggleLike(ctx context.Context, projectID, investorID string) (*ports.LikeResult, error) {
	project, liked, err := s.projects.ToggleLike(ctx, projectID, investorID)
	if err != nil {
		return nil, err
	}

	action := "unliked"
	if liked {
		action = "liked"
	}
	metrics.LikeTogglesTotal.WithLabelValues(action).Inc()

	return &ports.LikeResult{Likes: len(project.Likes), HasLiked: liked}, nil
}

// ExpressInterest adds the investor to the project's interest set. The first
// addition queues exactly one notification to the owning innovator; repeat
// calls change nothing and send nothing, but still report success.
func (s *ProjectService) ExpressInterest(ctx context.Context, projectID, investorID string) (*ports.InterestResult, error) {
	project, added, err := s.projects.AddInterest(ctx, projectID, investorID)
	if err != nil {
		return nil, err
	}

	if added {
		metrics.InterestTotal.Inc()
		s.notifyInterest(ctx, project, investorID)
	}

	return &ports.InterestResult{
		InterestedInvestors:  len(project.InterestedInvestors),
		HasExpressedInterest: true,
	}, nil
}

// notifyInterest queues the innovator's notification. Lookup failures are
// logged and swallowed: the interest is already recorded and the response
// must not fail over a mail.
func (s *ProjectService) notifyInterest(ctx context.Context, project *domain.Project, investorID string) {
	innovator, err := s.users.FindByID(ctx, project.InnovatorID)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", project.ID).Msg("interest notification: owner lookup failed")
		return
	}
	investor, err := s.users.FindByID(ctx, investorID)
	if err != nil {
		s.log.Error().Err(err).Str("investor_id", investorID).Msg("interest notification: investor lookup failed")
		return
	}
	s.notify.Enqueue(notifications.InvestorInterestNotice(innovator, investor, project))
}

// InvestorDashboard aggregates the caller's engagement from live queries.
func (s *ProjectService) InvestorDashboard(ctx context.Context, investorID string) (*ports.InvestorDashboard, error) {
	liked, err := s.projects.FindLikedBy(ctx, investorID)
	if err != nil {
		return nil, err
	}
	interested, err := s.projects.FindInterestedIn(ctx, investorID)
	if err != nil {
		return nil, err
	}
	recent, err := s.projects.FindRecent(ctx, recommendationLimit)
	if err != nil {
		return nil, err
	}

	owners, err := s.resolveUsers(ctx, collectIDs(recent, func(p *domain.Project) []string {
		return []string{p.InnovatorID}
	}))
	if err != nil {
		return nil, err
	}

	recs := make([]ports.RecommendedProject, 0, len(recent))
	for _, p := range recent {
		rec := ports.RecommendedProject{
			ID:            p.ID,
			Title:         p.Title,
			Description:   p.Description,
			Industry:      p.Industry,
			ProjectStage:  p.ProjectStage,
			FundingNeeded: p.FundingNeeded,
			CreatedAt:     p.CreatedAt,
		}
		if owner, ok := owners[p.InnovatorID]; ok {
			rec.Innovator = owner.FullName()
		}
		recs = append(recs, rec)
	}

	return &ports.InvestorDashboard{
		Liked:           len(liked),
		Interested:      len(interested),
		Recommendations: recs,
	}, nil
}

// InnovatorDashboard aggregates the caller's traction across all projects.
func (s *ProjectService) InnovatorDashboard(ctx context.Context, innovatorID string) (*ports.InnovatorDashboard, error) {
	projects, err := s.projects.FindByInnovator(ctx, innovatorID)
	if err != nil {
		return nil, err
	}

	totalLikes := 0
	interestedIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range projects {
		totalLikes += len(p.Likes)
		for _, id := range p.InterestedInvestors {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				interestedIDs = append(interestedIDs, id)
			}
		}
	}

	investors, err := s.resolveUsers(ctx, interestedIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.InterestSummary, 0, len(interestedIDs))
	for _, id := range interestedIDs {
		if u, ok := investors[id]; ok {
			summaries = append(summaries, interestSummary(u))
		}
	}

	return &ports.InnovatorDashboard{
		TotalProjects:       len(projects),
		TotalLikes:          totalLikes,
		InterestedInvestors: summaries,
	}, nil
}

// resolveUsers loads the given ids into a map keyed by id.
func (s *ProjectService) resolveUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	byID := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// collectIDs gathers distinct user ids referenced by the projects.
func collectIDs(projects []*domain.Project, pick func(*domain.Project) []string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, p := range projects {
		for _, id := range pick(p) {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func interestSummary(u *domain.User) ports.InterestSummary {
	sum := ports.InterestSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if u.Investor != nil {
		sum.InvestmentFocus = u.Investor.InvestmentFocus
		sum.InvestmentRange = u.Investor.InvestmentRange
	}
	return sum
}
