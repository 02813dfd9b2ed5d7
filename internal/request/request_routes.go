package request

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-workflow/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	roleResolver gin.HandlerFunc,
	rdb *redis.Client,
) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware(), roleResolver)
	{
		requests.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		requests.GET("", handler.List)
		requests.GET("/:id", handler.GetByID)
		requests.GET("/:id/timeline", handler.Timeline)

		requests.POST("/:id/submit", middleware.RateLimitByUser(2, 5), handler.Submit)
		requests.POST("/:id/approve",
			middleware.RateLimitByUser(2, 5),
			middleware.Idempotency(rdb),
			handler.Approve,
		)
		requests.POST("/:id/reject",
			middleware.RateLimitByUser(2, 5),
			middleware.Idempotency(rdb),
			handler.Reject,
		)
		requests.POST("/:id/start", middleware.RateLimitByUser(2, 5), handler.Start)
		requests.POST("/:id/complete", middleware.RateLimitByUser(2, 5), handler.Complete)
		requests.POST("/:id/cancel", middleware.RateLimitByUser(2, 5), handler.Cancel)

		requests.PATCH("/:id/priority", middleware.RateLimitByUser(2, 5), handler.SetPriority)
		requests.PATCH("/:id/assign", middleware.RateLimitByUser(2, 5), handler.Assign)
	}
}
