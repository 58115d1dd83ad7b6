package models

import "time"

// Comment is a visitor reply scoped to an article. Comments are immutable
// once created; Name already carries the redacted IP suffix.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AID       uint      `gorm:"column:aid;index;not null" json:"aid"`
	CreatedAt time.Time `json:"createdAt"`
}
