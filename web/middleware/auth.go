// Package middleware provides gin middlewares for the ad-hub web server.
package middleware

import (
	"net/http"
	"strings"

	"ad-hub/web/service"

	"github.com/gin-gonic/gin"
)

const userIdKey = "user_id"

// TokenRequired resolves the bearer token into a user id and stores it in
// the gin context. Any failure aborts the request with 401 before it
// reaches a service; ownership checks stay inside the services themselves.
func TokenRequired(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			c.Abort()
			return
		}

		userId, err := tokenService.Resolve(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			c.Abort()
			return
		}

		c.Set(userIdKey, userId)
		c.Next()
	}
}

// UserId returns the authenticated user id placed by TokenRequired.
func UserId(c *gin.Context) int {
	return c.GetInt(userIdKey)
}
