package controller

import (
	"errors"
	"net/http"

	"ad-hub/logger"
	"ad-hub/web/service"

	"github.com/gin-gonic/gin"
)

// jsonError maps a service failure to its HTTP status code. Anything
// outside the typed taxonomy is a backing-store problem and becomes a
// generic 500.
func jsonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrDuplicateComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
