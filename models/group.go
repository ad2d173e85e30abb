package models

import "time"

type Group struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"` // 自增ID
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Avatar      string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	OwnerID     uint64    `gorm:"column:owner_id;not null" json:"owner_id"` // 群主用户ID
	Description string    `gorm:"column:description;type:varchar(500);not null;default:''" json:"description"`
	MemberCount int       `gorm:"column:member_count;not null;default:0" json:"member_count"` // 已接受成员数量
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}
