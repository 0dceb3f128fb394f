package middleware

import (
	"net/http"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles checks that the authenticated user holds one of the given roles
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == string(allowed) {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "You don't have permission to access this resource")
		c.Abort()
	}
}

// RequireAdmin checks if the authenticated user has admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}
