package handler

import (
	"net/http"

	"training-tracker/internal/middleware"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe echoes the caller's token identity (requires the auth middleware).
func GetMe(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        id.UserID,
		"email":     id.Email,
		"firstName": id.FirstName,
		"lastName":  id.LastName,
	})
}
