package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-workflow/internal/domain"
	"go-workflow/internal/shared/response"
)

// RoleResolver looks up a user's current role in the store.
type RoleResolver interface {
	GetRole(ctx context.Context, userID string) (domain.AppRole, error)
}

// ResolveRole fetches the caller's role fresh on every request and places it
// in the gin context. Nothing downstream may cache it.
func ResolveRole(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		role, err := resolver.GetRole(c.Request.Context(), userID)
		if err != nil {
			// A user without a role row falls back to the signup default.
			role = domain.RoleEmployee
		}

		c.Set("role", string(role))
		c.Next()
	}
}
