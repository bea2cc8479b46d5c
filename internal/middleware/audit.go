package middleware

import (
	"training-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records one row per authenticated request after the handler ran.
// Failures to write the audit row never fail the request itself.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		id, ok := Identity(c)
		if !ok {
			return
		}
		userID := id.UserID

		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
