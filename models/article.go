package models

import "time"

// Article is a blog article. TagID must reference an active tag at write
// time; the reference is tolerated to dangle afterwards. State follows the
// soft-delete convention shared with Tag.
type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Intro     string    `gorm:"type:text;not null" json:"intro"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	TagID     uint      `gorm:"index;not null" json:"tagid"`
	State     int       `gorm:"default:1;index" json:"state"`
	Top       int       `gorm:"default:0" json:"top"`
	Watch     int       `gorm:"default:0" json:"watch"`
	Likes     int       `gorm:"default:0" json:"likes"`
	Img       string    `gorm:"size:512" json:"img"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
