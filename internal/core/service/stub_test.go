package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/notifications"
)

// In-memory doubles for the repository ports, shared by the service tests.

type stubEnqueuer struct {
	msgs []notifications.Message
}

func (e *stubEnqueuer) Enqueue(msg notifications.Message) {
	e.msgs = append(e.msgs, msg)
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.seq++
	clone := cloneUser(u)
	if clone.ID == "" {
		clone.ID = "user_" + strconv.Itoa(r.seq)
	}
	r.users[clone.ID] = clone
	return cloneUser(clone)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	return r.add(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Role == domain.RoleAdmin {
		return nil, domain.ErrUserNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindNonAdmin(_ context.Context, role domain.Role, status domain.Status) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		if status != "" && u.Status != status {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) FindRecentlyDecided(_ context.Context, limit int) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin || u.Status == domain.StatusPending {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubUserRepo) CountNonAdmin(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role != domain.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountByStatus(_ context.Context, status domain.Status) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role != domain.RoleAdmin && u.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	seq      int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Likes = append([]string{}, p.Likes...)
	clone.InterestedInvestors = append([]string{}, p.InterestedInvestors...)
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := cloneProject(p)
	if clone.ID == "" {
		clone.ID = "project_" + strconv.Itoa(r.seq)
	}
	r.projects[clone.ID] = clone
	return cloneProject(clone), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) sorted(filter func(*domain.Project) bool) []*domain.Project {
	var out []*domain.Project
	for _, p := range r.projects {
		if filter(p) {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]*domain.Project, error) {
	return r.sorted(func(*domain.Project) bool { return true }), nil
}

func (r *stubProjectRepo) FindByInnovator(_ context.Context, innovatorID string) ([]*domain.Project, error) {
	return r.sorted(func(p *domain.Project) bool { return p.InnovatorID == innovatorID }), nil
}

func (r *stubProjectRepo) FindLikedBy(_ context.Context, investorID string) ([]*domain.Project, error) {
	return r.sorted(func(p *domain.Project) bool { return contains(p.Likes, investorID) }), nil
}

func (r *stubProjectRepo) FindInterestedIn(_ context.Context, investorID string) ([]*domain.Project, error) {
	return r.sorted(func(p *domain.Project) bool { return contains(p.InterestedInvestors, investorID) }), nil
}

func (r *stubProjectRepo) FindRecent(_ context.Context, limit int) ([]*domain.Project, error) {
	out := r.sorted(func(*domain.Project) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProjectRepo) ToggleLike(_ context.Context, projectID, investorID string) (*domain.Project, bool, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, false, domain.ErrProjectNotFound
	}
	if contains(p.Likes, investorID) {
		p.Likes = remove(p.Likes, investorID)
		p.UpdatedAt = time.Now().UTC()
		return cloneProject(p), false, nil
	}
	p.Likes = append(p.Likes, investorID)
	p.UpdatedAt = time.Now().UTC()
	return cloneProject(p), true, nil
}

func (r *stubProjectRepo) AddInterest(_ context.Context, projectID, investorID string) (*domain.Project, bool, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, false, domain.ErrProjectNotFound
	}
	if contains(p.InterestedInvestors, investorID) {
		return cloneProject(p), false, nil
	}
	p.InterestedInvestors = append(p.InterestedInvestors, investorID)
	p.UpdatedAt = time.Now().UTC()
	return cloneProject(p), true, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
