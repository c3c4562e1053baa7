package middleware

import (
	"time"

	"ad-hub/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request with method, path, status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debugf("%s %s %d %s %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
