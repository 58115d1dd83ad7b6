package models

import "time"

// Tag states. Soft-deleted tags stay in the table but are invisible to reads
// and cannot be referenced by new or updated articles.
const (
	StateDeleted = 0
	StateActive  = 1
)

// Tag is a display label articles reference by id.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:64;not null" json:"title"`
	Color     string    `gorm:"size:32;not null" json:"color"`
	State     int       `gorm:"default:1;index" json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
