package util

import "github.com/gin-gonic/gin"

// business error codes carried alongside the HTTP status
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40301
	CodeInvalidOwner = 40002
	CodeServerErr    = 50001
)

// Error writes a uniform error body. Success responses return the stored
// record directly, so there is no Success counterpart here.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
