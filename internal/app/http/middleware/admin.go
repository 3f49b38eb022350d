package middleware

import (
	"net/http"
	"strings"

	"portfolio-api/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// RequireAdmin admits requests carrying "Authorization: Bearer <token>" where
// the token currently verifies. Undecodable tokens get "Invalid token"; any
// other failure is "Unauthorized".
func RequireAdmin(issuer *access.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if issuer.State(tokenString) != access.LoggedIn {
			msg := "Unauthorized"
			if issuer.Malformed(tokenString) {
				msg = "Invalid token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set("role", access.RoleAdmin)
		c.Next()
	}
}
