package comment

import (
	"github.com/gin-gonic/gin"

	"go-workflow/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, roleResolver gin.HandlerFunc) {
	comments := r.Group("/requests/:id/comments")
	comments.Use(middleware.AuthMiddleware(), roleResolver)
	{
		comments.POST("", handler.Add)
		comments.GET("", handler.ListByRequest)
	}
}
