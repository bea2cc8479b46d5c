package handler

import (
	"net/http"

	"training-tracker/internal/middleware"
	"training-tracker/internal/models"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnimalHandler serves animal creation.
type AnimalHandler struct {
	DB *gorm.DB
}

func NewAnimalHandler(db *gorm.DB) *AnimalHandler {
	return &AnimalHandler{DB: db}
}

type createAnimalReq struct {
	Name           string   `json:"name" binding:"required"`
	HoursTrained   *float64 `json:"hoursTrained" binding:"required"`
	DateOfBirth    string   `json:"dateOfBirth" binding:"required"`
	ProfilePicture string   `json:"profilePicture" binding:"required"`
}

// CreateAnimal creates an animal owned by the caller. The owner field is
// always the authenticated identity, regardless of anything in the body.
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "not authenticated")
		return
	}

	var req createAnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request")
		return
	}

	dob, err := util.ParseDate(req.DateOfBirth)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request")
		return
	}

	animal := models.Animal{
		Name:           req.Name,
		HoursTrained:   *req.HoursTrained,
		OwnerID:        id.UserID,
		DateOfBirth:    &dob,
		ProfilePicture: req.ProfilePicture,
	}
	if err := h.DB.Create(&animal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.JSON(http.StatusOK, animal)
}
