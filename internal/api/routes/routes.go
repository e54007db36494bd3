package routes

import (
	"ml-league-backend/internal/api/handlers"
	"ml-league-backend/internal/api/middleware"
	"ml-league-backend/internal/auth"
	"ml-league-backend/internal/config"
	"ml-league-backend/internal/repository"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, authCfg *auth.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Initialize token service and guard middleware
	tokenService, err := auth.NewService(authCfg)
	if err != nil {
		return nil, err
	}
	guard := auth.NewMiddleware(tokenService, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, validate)
	submissionService := service.NewSubmissionService(submissionRepo, teamRepo, validate)
	announcementService := service.NewAnnouncementService(announcementRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	leaderboardHandler := handlers.NewLeaderboardHandler(teamService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	adminHandler := handlers.NewAdminHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", guard.RequireAuth(), authHandler.Me)
	}

	// Team routes
	teams := router.Group("/teams")
	{
		teams.GET("/public", teamHandler.ListPublicTeams)
		teams.POST("/create", guard.RequireAuth(), teamHandler.CreateTeam)
		teams.GET("/me", guard.RequireAuth(), teamHandler.GetMyTeam)
		teams.PUT("/me", guard.RequireAuth(), teamHandler.UpdateMyTeam)
	}

	// Leaderboard and submissions
	router.GET("/leaderboard", leaderboardHandler.Leaderboard)
	router.POST("/submissions", guard.RequireAuth(), submissionHandler.Submit)

	// Announcement routes: reads are public, writes are admin-only
	announcements := router.Group("/announcements")
	{
		announcements.GET("", announcementHandler.List)
		announcements.POST("", guard.RequireAuth(), guard.RequireAdmin(), announcementHandler.Create)
		announcements.DELETE("/:id", guard.RequireAuth(), guard.RequireAdmin(), announcementHandler.Delete)
	}

	// Admin team management
	admin := router.Group("/admin", guard.RequireAuth(), guard.RequireAdmin())
	{
		admin.POST("/teams/:id/ban", adminHandler.BanTeam)
		admin.POST("/teams/:id/unban", adminHandler.UnbanTeam)
		admin.DELETE("/teams/:id", adminHandler.DeleteTeam)
	}

	return router, nil
}
