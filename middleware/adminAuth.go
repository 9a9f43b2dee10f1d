package middleware

import (
	"net/http"
	"strings"

	"furaha/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware gates admin endpoints behind a bearer token issued
// by the admin login endpoint.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided.",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if ok, err := utils.IsAdminToken(tokenString); !ok || err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token.",
			})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
