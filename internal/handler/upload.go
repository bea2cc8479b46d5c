package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"training-tracker/internal/middleware"
	"training-tracker/internal/models"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadHandler stores uploaded files under a local directory and keeps
// metadata rows in the database.
type UploadHandler struct {
	DB  *gorm.DB
	Dir string
}

func NewUploadHandler(db *gorm.DB, dir string) *UploadHandler {
	if dir == "" {
		dir = "uploads"
	}
	return &UploadHandler{DB: db, Dir: dir}
}

// Upload accepts a multipart "file" field, writes it under a randomized
// name and responds with the stored metadata record.
func (h *UploadHandler) Upload(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "not authenticated")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "bad request")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	storedName := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.Dir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	upload := models.FileUpload{
		OriginalName: filepath.Base(file.Filename),
		StoredName:   storedName,
		Path:         dst,
		Size:         file.Size,
		ContentType:  file.Header.Get("Content-Type"),
		UserID:       id.UserID,
	}
	if err := h.DB.Create(&upload).Error; err != nil {
		// keep disk and database consistent
		_ = os.Remove(dst)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.JSON(http.StatusOK, upload)
}
