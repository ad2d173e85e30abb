package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	ID        uint64         `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64         `gorm:"column:user_id;not null;index:idx_posts_user_id" json:"user_id"`
	Title     string         `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Content   string         `gorm:"column:content;type:text" json:"content"`
	MediaData datatypes.JSON `gorm:"column:media_data" json:"media_data"`
	CreatedAt time.Time      `gorm:"column:created_at;index:idx_posts_created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (p Post) TableName() string {
	return "posts"
}
