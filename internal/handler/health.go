package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness to authenticated callers.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"healthy": true})
}
