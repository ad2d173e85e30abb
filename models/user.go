package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Handle       string    `gorm:"column:handle;type:varchar(64);not null;uniqueIndex" json:"handle"`
	Nickname     string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	Avatar       string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Bio          string    `gorm:"column:bio;type:varchar(255);not null;default:''" json:"bio"`
	IsPrivate    bool      `gorm:"column:is_private;not null;default:false" json:"is_private"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"-"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
