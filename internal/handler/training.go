package handler

import (
	"errors"
	"net/http"

	"training-tracker/internal/middleware"
	"training-tracker/internal/models"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TrainingHandler serves training-log creation.
type TrainingHandler struct {
	DB *gorm.DB
}

func NewTrainingHandler(db *gorm.DB) *TrainingHandler {
	return &TrainingHandler{DB: db}
}

type createTrainingReq struct {
	Date             string   `json:"date" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Hours            *float64 `json:"hours" binding:"required"`
	Animal           uint     `json:"animal" binding:"required"`
	TrainingLogVideo string   `json:"trainingLogVideo" binding:"required"`
}

// CreateTrainingLog creates a log against an animal the caller owns.
// A missing animal and an animal owned by someone else both answer
// 400 "invalid owner"; the two cases are deliberately indistinguishable.
func (h *TrainingHandler) CreateTrainingLog(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "not authenticated")
		return
	}

	var req createTrainingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request")
		return
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request")
		return
	}

	var animal models.Animal
	if err := h.DB.First(&animal, req.Animal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidOwner, "invalid owner")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		}
		return
	}
	if animal.OwnerID != id.UserID {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidOwner, "invalid owner")
		return
	}

	log := models.TrainingLog{
		Date:             date,
		Description:      req.Description,
		Hours:            *req.Hours,
		AnimalID:         animal.ID,
		UserID:           id.UserID,
		TrainingLogVideo: req.TrainingLogVideo,
	}
	if err := h.DB.Create(&log).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.JSON(http.StatusOK, log)
}
