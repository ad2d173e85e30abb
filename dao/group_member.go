package dao

import (
	"Circle/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type GroupMemberDAO struct {
	Repo[models.GroupMember]
}

func NewGroupMemberDAO(db *gorm.DB) *GroupMemberDAO {
	return &GroupMemberDAO{Repo: NewRepo[models.GroupMember](db)}
}

func (d *GroupMemberDAO) WithDB(tx *gorm.DB) *GroupMemberDAO {
	return &GroupMemberDAO{Repo: Repo[models.GroupMember]{Db: tx}}
}

// FindByUserId 查询成员记录（任意状态），不存在返回 (nil, nil)
func (d *GroupMemberDAO) FindByUserId(ctx context.Context, groupID, userID uint64) (*models.GroupMember, error) {
	return d.FindByWhere(ctx, "group_id = ? AND user_id = ?", groupID, userID)
}

// IsMember 是否为已接受成员
func (d *GroupMemberDAO) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "group_id = ? AND user_id = ? AND status = ?",
		groupID, userID, models.GroupMemberStatusAccepted)
}

func (d *GroupMemberDAO) CreateMember(ctx context.Context, groupID, userID uint64, role, status int) error {
	now := time.Now()
	return d.Db.WithContext(ctx).Create(&models.GroupMember{
		GroupID:   groupID,
		UserID:    userID,
		Role:      role,
		Status:    status,
		JoinTime:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// UpdateStatus 按当前状态迁移，返回是否真正发生了变更
func (d *GroupMemberDAO) UpdateStatus(ctx context.Context, groupID, userID uint64, from, to int) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ? AND status = ?", groupID, userID, from).
		Updates(map[string]any{
			"status":     to,
			"join_time":  time.Now(),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteMember 删除成员记录，返回是否真正删除
func (d *GroupMemberDAO) DeleteMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetMembers 已接受的群成员列表，附带用户信息
func (d *GroupMemberDAO) GetMembers(ctx context.Context, groupID uint64) ([]models.GroupMemberItem, error) {
	return d.listMembers(ctx, groupID, models.GroupMemberStatusAccepted)
}

// GetPendingMembers 待审核的入群申请列表
func (d *GroupMemberDAO) GetPendingMembers(ctx context.Context, groupID uint64) ([]models.GroupMemberItem, error) {
	return d.listMembers(ctx, groupID, models.GroupMemberStatusPending)
}

func (d *GroupMemberDAO) listMembers(ctx context.Context, groupID uint64, status int) ([]models.GroupMemberItem, error) {
	var items []models.GroupMemberItem
	err := d.Db.WithContext(ctx).
		Table("group_member gm").
		Select("u.id as user_id, u.handle, u.nickname, u.avatar, gm.role, gm.status").
		Joins("LEFT JOIN users u ON gm.user_id = u.id").
		Where("gm.group_id = ? AND gm.status = ?", groupID, status).
		Order("gm.role ASC, gm.join_time ASC").
		Scan(&items).Error
	return items, err
}

// GetMemberIds 已接受成员的用户ID
func (d *GroupMemberDAO) GetMemberIds(ctx context.Context, groupID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("group_id = ? AND status = ?", groupID, models.GroupMemberStatusAccepted).
		Pluck("user_id", &ids).Error
	return ids, err
}

// DeleteByGroup 解散群时清理所有成员
func (d *GroupMemberDAO) DeleteByGroup(ctx context.Context, groupID uint64) error {
	return d.Db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&models.GroupMember{}).Error
}
