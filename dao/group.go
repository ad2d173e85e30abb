package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type GroupDAO struct {
	Repo[models.Group]
}

func NewGroupDAO(db *gorm.DB) *GroupDAO {
	return &GroupDAO{Repo: NewRepo[models.Group](db)}
}

func (d *GroupDAO) WithDB(tx *gorm.DB) *GroupDAO {
	return &GroupDAO{Repo: Repo[models.Group]{Db: tx}}
}

// GetGroup 查询群，不存在返回 (nil, nil)
func (d *GroupDAO) GetGroup(ctx context.Context, id uint64) (*models.Group, error) {
	return d.FindById(ctx, id)
}

// ListByUser 查询用户已加入（Accepted）的群
func (d *GroupDAO) ListByUser(ctx context.Context, userID uint64) ([]models.Group, error) {
	var groups []models.Group
	err := d.Db.WithContext(ctx).
		Table("groups g").
		Joins("JOIN group_member gm ON gm.group_id = g.id").
		Where("gm.user_id = ? AND gm.status = ?", userID, models.GroupMemberStatusAccepted).
		Order("g.created_at DESC").
		Find(&groups).Error
	return groups, err
}

// IncrMemberCount 群成员数增减
func (d *GroupDAO) IncrMemberCount(ctx context.Context, groupID uint64, delta int) error {
	q := d.Db.WithContext(ctx).Model(&models.Group{})
	if delta < 0 {
		q = q.Where("id = ? AND member_count >= ?", groupID, -delta)
	} else {
		q = q.Where("id = ?", groupID)
	}
	return q.Update("member_count", gorm.Expr("member_count + ?", delta)).Error
}
