package dashboard

import (
	"github.com/gin-gonic/gin"

	"go-workflow/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, roleResolver gin.HandlerFunc) {
	stats := r.Group("/dashboard")
	stats.Use(middleware.AuthMiddleware(), roleResolver)
	{
		stats.GET("/stats", handler.Stats)
	}
}
