package middleware

import (
	"net/http"
	"strings"

	"academic-attendance-backend/pkg/token"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the HttpOnly cookie carrying the access token
const AccessTokenCookie = "access_token"

// AuthMiddleware validates the JWT access token from the access cookie or,
// failing that, the Authorization header, and injects the verified claims
// into the request context.
func AuthMiddleware(tokenSvc *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("registrationNumber", claims.RegistrationNumber)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
