package models

import "time"

// Animal represents an animal under training. Owner is fixed at creation
// to the creating user and never changes afterwards.
type Animal struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:64;not null" json:"name"`
	HoursTrained   float64    `gorm:"not null" json:"hoursTrained"` // cumulative
	OwnerID        uint       `gorm:"index;not null" json:"owner"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	ProfilePicture string     `gorm:"size:255" json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
