package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/innovest/platform/internal/api/handler"
	"github.com/innovest/platform/internal/api/middleware"
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/service"
	"github.com/innovest/platform/internal/infrastructure/config"
	mongodb "github.com/innovest/platform/internal/infrastructure/db/mongo"
	"github.com/innovest/platform/internal/notifications"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	notify notifications.Enqueuer,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("innovest"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)

	authService := service.NewAuthService(userRepo, notify, cfg.JWTSecret, 0, cfg.Admin.Email, log)
	projectService := service.NewProjectService(projectRepo, userRepo, notify, log)
	adminService := service.NewAdminService(userRepo, notify, cfg.FrontendURL, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	adminHandler := handler.NewAdminHandler(adminService)

	authn := middleware.Auth(cfg.JWTSecret, userRepo)
	approved := middleware.Approved()
	investorOnly := middleware.RBAC(domain.RoleInvestor)
	innovatorOnly := middleware.RBAC(domain.RoleInnovator)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleInvestor, domain.RoleInnovator, domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.GET("/me", authHandler.Me, authn)

	// --- Project routes ---
	projects := e.Group("/api/projects", authn)
	projects.POST("", projectHandler.Create, innovatorOnly, approved)
	projects.GET("", projectHandler.List, anyRole, approved)
	projects.POST("/:id/like", projectHandler.ToggleLike, investorOnly, approved)
	projects.POST("/:id/interest", projectHandler.ExpressInterest, investorOnly, approved)

	// --- Role dashboards ---
	investor := e.Group("/api/investor", authn, investorOnly, approved)
	investor.GET("/dashboard", projectHandler.InvestorDashboard)

	innovator := e.Group("/api/innovator", authn, innovatorOnly, approved)
	innovator.GET("/projects", projectHandler.ListOwn)
	innovator.GET("/dashboard", projectHandler.InnovatorDashboard)

	// --- Admin routes (no approval gate: admins bypass it by definition) ---
	admin := e.Group("/api/admin", authn, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users/pending", adminHandler.PendingUsers)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/approve", adminHandler.Approve)
	admin.POST("/users/:id/reject", adminHandler.Reject)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
