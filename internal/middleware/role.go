package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			reject(c, "role", http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		current, _ := role.(string)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		reject(c, "role", http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	}
}
