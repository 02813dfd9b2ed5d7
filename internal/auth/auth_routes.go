package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-workflow/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Credential endpoints carry a per-IP limit against brute force.
		limited := authGroup.Group("")
		limited.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
		{
			limited.POST("/register", handler.Register)
			limited.POST("/login", handler.Login)
			limited.POST("/refresh", handler.Refresh)
		}

		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
