package models

import "time"

// Image 上传文件记录，Path 为相对公共目录的路径
type Image struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_images_user_id" json:"user_id"`
	Path      string    `gorm:"column:path;type:varchar(255);not null" json:"path"`
	Width     int       `gorm:"column:width;not null;default:0" json:"width"`
	Height    int       `gorm:"column:height;not null;default:0" json:"height"`
	Size      int64     `gorm:"column:size;not null;default:0" json:"size"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
