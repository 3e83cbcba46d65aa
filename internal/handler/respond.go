package handler

import (
	"errors"
	"net/http"

	"house-points/internal/logger"
	"house-points/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the HTTP taxonomy. Anything outside the
// known sentinels becomes a generic 500 so internals never leak.
func writeError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrHouseNotFound), errors.Is(err, service.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
