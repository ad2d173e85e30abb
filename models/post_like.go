package models

import "time"

// PostLike 点赞记录
// 对应表 post_likes
// 唯一键: post_id + user_id，记录存在即已点赞
type PostLike struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:uk_post_user,unique,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:uk_post_user,unique,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (p PostLike) TableName() string { return "post_likes" }
