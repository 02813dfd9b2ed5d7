package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"go-workflow/internal/auth"
	"go-workflow/internal/comment"
	"go-workflow/internal/dashboard"
	"go-workflow/internal/messaging/kafka"
	"go-workflow/internal/middleware"
	"go-workflow/internal/notification"
	"go-workflow/internal/profile"
	"go-workflow/internal/rbac"
	"go-workflow/internal/request"
	"go-workflow/internal/timeline"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	timelineRepo := timeline.NewRepository(gormDB)
	commentRepo := comment.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, profileRepo)
	profileService := profile.NewService(profileRepo)
	requestService := request.NewService(db, requestRepo, timelineRepo, outboxRepo, profileService)
	commentService := comment.NewService(commentRepo, requestService)
	notificationService := notification.NewService(notificationRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	requestHandler := request.NewHandler(requestService, rdb)
	commentHandler := comment.NewHandler(commentService)
	notificationHandler := notification.NewHandler(notificationService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// Every authenticated route resolves the role from the store again;
	// a reassignment applies on the very next request.
	roleResolver := middleware.ResolveRole(profileService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		auth.RegisterRoutes(api, authHandler)
		profile.RegisterRoutes(api, profileHandler, roleResolver, enforcer)
		request.RegisterRoutes(api, requestHandler, roleResolver, rdb)
		comment.RegisterRoutes(api, commentHandler, roleResolver)
		notification.RegisterRoutes(api, notificationHandler)
		dashboard.RegisterRoutes(api, dashboardHandler, roleResolver)
	}

	return nil
}
