package profile

import (
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"go-workflow/internal/middleware"
	"go-workflow/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	roleResolver gin.HandlerFunc,
	enforcer *casbin.Enforcer,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), roleResolver)
	{
		users.GET("", rbac.Authorize(enforcer, "users", "read"), handler.ListUsers)
		users.PUT("/:id/role", rbac.Authorize(enforcer, "users", "manage"), handler.AssignRole)
	}
}
