package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /api/projects.
//
// @Summary      Create a funding proposal
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  map[string]string
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Title:         req.Title,
		Description:   req.Description,
		Industry:      req.Industry,
		ProjectStage:  req.ProjectStage,
		FundingNeeded: req.FundingNeeded,
		InnovatorID:   user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// List handles GET /api/projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	views, err := h.service.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]projectResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toProjectResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// ListOwn handles GET /api/innovator/projects.
//
// @Summary      List the caller's own projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ownProjectResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/innovator/projects [get]
func (h *ProjectHandler) ListOwn(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListOwnProjects(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]ownProjectResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toOwnProjectResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// ToggleLike handles POST /api/projects/:id/like.
//
// @Summary      Toggle a like on a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  likeToggleResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/like [post]
func (h *ProjectHandler) ToggleLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, likeToggleResponse{
		Likes:    result.Likes,
		HasLiked: result.HasLiked,
	})
}

// ExpressInterest handles POST /api/projects/:id/interest.
//
// @Summary      Express interest in a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  interestResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/interest [post]
func (h *ProjectHandler) ExpressInterest(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.service.ExpressInterest(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, interestResponse{
		InterestedInvestors:  result.InterestedInvestors,
		HasExpressedInterest: result.HasExpressedInterest,
	})
}

// InvestorDashboard handles GET /api/investor/dashboard.
//
// @Summary      Investor engagement dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  investorDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/investor/dashboard [get]
func (h *ProjectHandler) InvestorDashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	dash, err := h.service.InvestorDashboard(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	recs := make([]recommendedProjectResponse, 0, len(dash.Recommendations))
	for _, r := range dash.Recommendations {
		recs = append(recs, recommendedProjectResponse{
			ID:            r.ID,
			Title:         r.Title,
			Description:   r.Description,
			Industry:      r.Industry,
			ProjectStage:  r.ProjectStage,
			FundingNeeded: r.FundingNeeded,
			Innovator:     r.Innovator,
			CreatedAt:     r.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, investorDashboardResponse{
		Liked:           dash.Liked,
		Interested:      dash.Interested,
		Recommendations: recs,
	})
}

// InnovatorDashboard handles GET /api/innovator/dashboard.
//
// @Summary      Innovator traction dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  innovatorDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/innovator/dashboard [get]
func (h *ProjectHandler) InnovatorDashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	dash, err := h.service.InnovatorDashboard(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	investors := make([]interestSummaryResponse, 0, len(dash.InterestedInvestors))
	for _, i := range dash.InterestedInvestors {
		investors = append(investors, toInterestSummaryResponse(i))
	}

	return c.JSON(http.StatusOK, innovatorDashboardResponse{
		TotalProjects:       dash.TotalProjects,
		TotalLikes:          dash.TotalLikes,
		InterestedInvestors: investors,
	})
}
