package models

import "time"

// GroupMessage 群聊消息，发送后不可修改，仅可删除
type GroupMessage struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"` // Snowflake
	GroupID   uint64    `gorm:"column:group_id;not null;index:idx_group_created,priority:1" json:"group_id"`
	SenderID  uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt int64     `gorm:"column:created_at;not null;index:idx_group_created,priority:2" json:"created_at"` // 毫秒
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (GroupMessage) TableName() string {
	return "group_message"
}

// DirectMessage 私信消息
type DirectMessage struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"` // Snowflake
	ConvKey    string    `gorm:"column:conv_key;type:varchar(64);not null;index:idx_conv_created,priority:1" json:"conv_key"`
	SenderID   uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null" json:"receiver_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  int64     `gorm:"column:created_at;not null;index:idx_conv_created,priority:2" json:"created_at"` // 毫秒
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (DirectMessage) TableName() string {
	return "direct_message"
}
