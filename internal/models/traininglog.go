package models

import "time"

// TrainingLog records a single training session against an animal.
// UserID is always the authenticated creator, which must match the
// animal's owner at creation time.
type TrainingLog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Date             time.Time `gorm:"index;not null" json:"date"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	Hours            float64   `gorm:"not null" json:"hours"`
	AnimalID         uint      `gorm:"index;not null" json:"animal"`
	UserID           uint      `gorm:"index;not null" json:"user"`
	TrainingLogVideo string    `gorm:"size:255" json:"trainingLogVideo,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Animal Animal `gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE" json:"-"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
