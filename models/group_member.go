package models

import "time"

const (
	GroupMemberRoleOwner  = 1
	GroupMemberRoleMember = 3

	GroupMemberStatusPending  = 1
	GroupMemberStatusAccepted = 2
)

type GroupMember struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	GroupID   uint64    `gorm:"column:group_id;not null;index:uk_group_user,unique,priority:1" json:"group_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:uk_group_user,unique,priority:2" json:"user_id"`
	Role      int       `gorm:"column:role;not null;default:3" json:"role"`     // 1:群主 3:普通成员
	Status    int       `gorm:"column:status;not null;default:1" json:"status"` // 1:待审核 2:已加入
	JoinTime  time.Time `gorm:"column:join_time" json:"join_time"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (GroupMember) TableName() string {
	return "group_member"
}

type GroupMemberItem struct {
	UserID   uint64 `gorm:"column:user_id" json:"user_id"`
	Handle   string `gorm:"column:handle" json:"handle"`
	Nickname string `gorm:"column:nickname" json:"nickname"`
	Avatar   string `gorm:"column:avatar" json:"avatar"`
	Role     int    `gorm:"column:role" json:"role"`
	Status   int    `gorm:"column:status" json:"status"`
}
