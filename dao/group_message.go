package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type GroupMessageDAO struct {
	Repo[models.GroupMessage]
}

func NewGroupMessageDAO(db *gorm.DB) *GroupMessageDAO {
	return &GroupMessageDAO{Repo: NewRepo[models.GroupMessage](db)}
}

func (d *GroupMessageDAO) WithDB(tx *gorm.DB) *GroupMessageDAO {
	return &GroupMessageDAO{Repo: Repo[models.GroupMessage]{Db: tx}}
}

// ListByGroup 群消息历史，按发送时间正序
func (d *GroupMessageDAO) ListByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]models.GroupMessage, error) {
	var msgs []models.GroupMessage
	err := d.Db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

// DeleteByGroup 解散群时清理消息
func (d *GroupMessageDAO) DeleteByGroup(ctx context.Context, groupID uint64) error {
	return d.Db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&models.GroupMessage{}).Error
}
