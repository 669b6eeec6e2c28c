package middleware

import (
	"net/http"
	"strings"

	"cloudshop/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey     = "authUserID"
	AuthUsernameKey = "authUsername"
	AuthRoleKey     = "authRole"
)

// RequireAuth validates the bearer token and requires the given role. Users
// and admins are issued tokens with different role claims, so an admin token
// is not accepted on user routes or vice versa.
func RequireAuth(jwtUtil *utils.JWTUtil, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authorization token required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthUsernameKey, claims.Username)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
