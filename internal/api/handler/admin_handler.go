package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
)

// AdminHandler handles the approval workflow and its read models.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type adminStatsResponse struct {
	TotalUsers       int64          `json:"totalUsers"`
	PendingApprovals int64          `json:"pendingApprovals"`
	Investors        int64          `json:"investors"`
	Innovators       int64          `json:"innovators"`
	RecentApprovals  []*domain.User `json:"recentApprovals"`
}

type decisionResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Admin dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminStatsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	recent := stats.RecentDecisions
	if recent == nil {
		recent = []*domain.User{}
	}

	return c.JSON(http.StatusOK, adminStatsResponse{
		TotalUsers:       stats.TotalUsers,
		PendingApprovals: stats.PendingApprovals,
		Investors:        stats.Investors,
		Innovators:       stats.Innovators,
		RecentApprovals:  recent,
	})
}

// PendingUsers handles GET /api/admin/users/pending.
//
// @Summary      List accounts waiting for review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users/pending [get]
func (h *AdminHandler) PendingUsers(c echo.Context) error {
	users, err := h.service.PendingUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// ListUsers handles GET /api/admin/users?role=.
//
// @Summary      List non-admin accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Role filter (investor, innovator, all)"
// @Success      200   {array}   domain.User
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Approve handles POST /api/admin/users/:id/approve.
//
// @Summary      Approve an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  decisionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	user, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionResponse{Message: "User approved successfully", User: user})
}

// Reject handles POST /api/admin/users/:id/reject.
//
// @Summary      Reject an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  decisionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id}/reject [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	user, err := h.service.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionResponse{Message: "User rejected successfully", User: user})
}
