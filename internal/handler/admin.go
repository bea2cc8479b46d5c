package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"training-tracker/internal/models"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// AdminHandler serves the coarse admin views: first page of each record
// type, newest first, plus exports of the training-log table.
type AdminHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewAdminHandler(db *gorm.DB, pageSize int) *AdminHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AdminHandler{DB: db, PageSize: pageSize}
}

// ListUsers returns the newest users, capped at the page size.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("created_at DESC").Limit(h.PageSize).Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListAnimals returns the newest animals, capped at the page size.
func (h *AdminHandler) ListAnimals(c *gin.Context) {
	var animals []models.Animal
	if err := h.DB.Order("created_at DESC").Limit(h.PageSize).Find(&animals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}
	c.JSON(http.StatusOK, animals)
}

// ListTraining returns the newest training logs, capped at the page size.
func (h *AdminHandler) ListTraining(c *gin.Context) {
	var logs []models.TrainingLog
	if err := h.DB.Order("created_at DESC").Limit(h.PageSize).Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ListAudit returns the newest audit rows, capped at the page size.
func (h *AdminHandler) ListAudit(c *gin.Context) {
	var entries []models.AuditLog
	if err := h.DB.Order("created_at DESC").Limit(h.PageSize).Find(&entries).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ---------- exports ----------

var exportHeader = []string{"ID", "Date", "Description", "Hours", "Animal", "User", "Video"}

func exportRow(l *models.TrainingLog) []string {
	return []string{
		strconv.FormatUint(uint64(l.ID), 10),
		l.Date.Format("2006-01-02"),
		l.Description,
		strconv.FormatFloat(l.Hours, 'f', 2, 64),
		strconv.FormatUint(uint64(l.AnimalID), 10),
		strconv.FormatUint(uint64(l.UserID), 10),
		l.TrainingLogVideo,
	}
}

func (h *AdminHandler) allTraining() ([]models.TrainingLog, error) {
	var logs []models.TrainingLog
	err := h.DB.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

// ExportTrainingCSV streams all training logs as a CSV attachment.
func (h *AdminHandler) ExportTrainingCSV(c *gin.Context) {
	logs, err := h.allTraining()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"training_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range logs {
		writer.Write(exportRow(&logs[i]))
	}
}

// ExportTrainingXLSX streams all training logs as an XLSX attachment.
func (h *AdminHandler) ExportTrainingXLSX(c *gin.Context) {
	logs, err := h.allTraining()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "TrainingLogs"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, l := range logs {
		for col, val := range exportRow(&l) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"training_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		// headers already sent; nothing more we can report to the client
		return
	}
}
