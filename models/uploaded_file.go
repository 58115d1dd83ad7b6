package models

import "time"

// UploadedFile records stored upload metadata.
type UploadedFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"originalname"`
	MimeType     string    `gorm:"size:128" json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `gorm:"size:1024;not null" json:"path"`
	Extension    string    `gorm:"size:32" json:"extension"`
	URL          string    `gorm:"size:1024;not null" json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}
