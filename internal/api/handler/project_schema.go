package handler

import (
	"time"

	"github.com/innovest/platform/internal/core/ports"
)

type createProjectRequest struct {
	Title         string  `json:"title"         validate:"required"`
	Description   string  `json:"description"   validate:"required"`
	Industry      string  `json:"industry"      validate:"required"`
	ProjectStage  string  `json:"projectStage"  validate:"required"`
	FundingNeeded float64 `json:"fundingNeeded" validate:"gte=0"`
}

type innovatorSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type projectResponse struct {
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	Description         string                   `json:"description"`
	Industry            string                   `json:"industry"`
	ProjectStage        string                   `json:"projectStage"`
	FundingNeeded       float64                  `json:"fundingNeeded"`
	Innovator           innovatorSummaryResponse `json:"innovator"`
	Likes               int                      `json:"likes"`
	InterestedInvestors int                      `json:"interestedInvestors"`
	CreatedAt           time.Time                `json:"createdAt"`
	UpdatedAt           time.Time                `json:"updatedAt"`
}

type likeSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type interestSummaryResponse struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	InvestmentFocus string `json:"investmentFocus"`
	InvestmentRange string `json:"investmentRange"`
}

// ownProjectResponse resolves the engagement sets to profile summaries for
// the owner's view.
type ownProjectResponse struct {
	ID                  string                    `json:"id"`
	Title               string                    `json:"title"`
	Description         string                    `json:"description"`
	Industry            string                    `json:"industry"`
	ProjectStage        string                    `json:"projectStage"`
	FundingNeeded       float64                   `json:"fundingNeeded"`
	Likes               []likeSummaryResponse     `json:"likes"`
	InterestedInvestors []interestSummaryResponse `json:"interestedInvestors"`
	CreatedAt           time.Time                 `json:"createdAt"`
	UpdatedAt           time.Time                 `json:"updatedAt"`
}

type likeToggleResponse struct {
	Likes    int  `json:"likes"`
	HasLiked bool `json:"hasLiked"`
}

type interestResponse struct {
	InterestedInvestors  int  `json:"interestedInvestors"`
	HasExpressedInterest bool `json:"hasExpressedInterest"`
}

type recommendedProjectResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry"`
	ProjectStage  string    `json:"projectStage"`
	FundingNeeded float64   `json:"fundingNeeded"`
	Innovator     string    `json:"innovator"`
	CreatedAt     time.Time `json:"createdAt"`
}

type investorDashboardResponse struct {
	Liked           int                          `json:"liked"`
	Interested      int                          `json:"interested"`
	Recommendations []recommendedProjectResponse `json:"recommendations"`
}

type innovatorDashboardResponse struct {
	TotalProjects       int                       `json:"totalProjects"`
	TotalLikes          int                       `json:"totalLikes"`
	InterestedInvestors []interestSummaryResponse `json:"interestedInvestors"`
}

func toProjectResponse(v ports.ProjectView) projectResponse {
	return projectResponse{
		ID:            v.Project.ID,
		Title:         v.Project.Title,
		Description:   v.Project.Description,
		Industry:      v.Project.Industry,
		ProjectStage:  v.Project.ProjectStage,
		FundingNeeded: v.Project.FundingNeeded,
		Innovator: innovatorSummaryResponse{
			ID:        v.Innovator.ID,
			FirstName: v.Innovator.FirstName,
			LastName:  v.Innovator.LastName,
			Email:     v.Innovator.Email,
			Phone:     v.Innovator.Phone,
		},
		Likes:               len(v.Project.Likes),
		InterestedInvestors: len(v.Project.InterestedInvestors),
		CreatedAt:           v.Project.CreatedAt,
		UpdatedAt:           v.Project.UpdatedAt,
	}
}

func toOwnProjectResponse(v ports.OwnProjectView) ownProjectResponse {
	resp := ownProjectResponse{
		ID:                  v.Project.ID,
		Title:               v.Project.Title,
		Description:         v.Project.Description,
		Industry:            v.Project.Industry,
		ProjectStage:        v.Project.ProjectStage,
		FundingNeeded:       v.Project.FundingNeeded,
		Likes:               make([]likeSummaryResponse, 0, len(v.Likes)),
		InterestedInvestors: make([]interestSummaryResponse, 0, len(v.InterestedInvestors)),
		CreatedAt:           v.Project.CreatedAt,
		UpdatedAt:           v.Project.UpdatedAt,
	}
	for _, l := range v.Likes {
		resp.Likes = append(resp.Likes, likeSummaryResponse{
			ID:        l.ID,
			FirstName: l.FirstName,
			LastName:  l.LastName,
		})
	}
	for _, i := range v.InterestedInvestors {
		resp.InterestedInvestors = append(resp.InterestedInvestors, toInterestSummaryResponse(i))
	}
	return resp
}

func toInterestSummaryResponse(i ports.InterestSummary) interestSummaryResponse {
	return interestSummaryResponse{
		ID:              i.ID,
		FirstName:       i.FirstName,
		LastName:        i.LastName,
		Email:           i.Email,
		InvestmentFocus: i.InvestmentFocus,
		InvestmentRange: i.InvestmentRange,
	}
}
