package database

import (
	"path/filepath"
	"testing"

	"training-tracker/internal/config"
	"training-tracker/internal/models"
)

func TestInitAndMigrate(t *testing.T) {
	db, err := Init(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "t.db")})
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate error: %v", err)
	}

	user := models.User{FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user ID not assigned")
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if got.Email != "a@x.com" {
		t.Fatalf("email = %q, want %q", got.Email, "a@x.com")
	}
}
