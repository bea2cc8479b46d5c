package models

import "time"

// FileUpload stores metadata about an uploaded file kept on local disk.
// StoredName is the randomized on-disk name, OriginalName what the client sent.
type FileUpload struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	StoredName   string    `gorm:"size:128;uniqueIndex;not null" json:"fileName"`
	Path         string    `gorm:"size:512;not null" json:"path"`
	Size         int64     `gorm:"not null" json:"size"`
	ContentType  string    `gorm:"size:128" json:"mimetype"`
	UserID       uint      `gorm:"index;not null" json:"user"`
	CreatedAt    time.Time `json:"createdAt"`
}
