package router

import (
	"net/http"
	"time"

	"training-tracker/internal/auth"
	"training-tracker/internal/config"
	"training-tracker/internal/handler"
	"training-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "training-tracker", "version": 2})
	})

	tokens := auth.New(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	api := r.Group("/api")

	// public: registration and login
	authHandler := handler.NewAuthHandler(db, tokens, cfg.Security.BcryptCost)
	api.POST("/user", authHandler.Register)
	api.POST("/user/login", authHandler.Login)

	// everything else sits behind the auth gate
	protected := api.Group("")
	protected.Use(
		middleware.Auth(tokens),
		middleware.Audit(db),
	)

	protected.GET("/health", handler.Health)
	protected.GET("/me", handler.GetMe)
	protected.POST("/user/verify", authHandler.Verify)

	animalHandler := handler.NewAnimalHandler(db)
	protected.POST("/animal", animalHandler.CreateAnimal)

	trainingHandler := handler.NewTrainingHandler(db)
	protected.POST("/training", trainingHandler.CreateTrainingLog)

	adminHandler := handler.NewAdminHandler(db, cfg.App.PageSize)
	protected.POST("/admin/users", adminHandler.ListUsers)
	protected.POST("/admin/animals", adminHandler.ListAnimals)
	protected.POST("/admin/training", adminHandler.ListTraining)
	protected.GET("/admin/audit", adminHandler.ListAudit)
	protected.GET("/admin/export/training.csv", adminHandler.ExportTrainingCSV)
	protected.GET("/admin/export/training.xlsx", adminHandler.ExportTrainingXLSX)

	uploadHandler := handler.NewUploadHandler(db, cfg.Upload.Dir)
	protected.POST("/file/upload", uploadHandler.Upload)

	return r
}
