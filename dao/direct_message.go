package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type DirectMessageDAO struct {
	Repo[models.DirectMessage]
}

func NewDirectMessageDAO(db *gorm.DB) *DirectMessageDAO {
	return &DirectMessageDAO{Repo: NewRepo[models.DirectMessage](db)}
}

// ListByConvKey 私信历史，按发送时间正序
func (d *DirectMessageDAO) ListByConvKey(ctx context.Context, convKey string, limit, offset int) ([]models.DirectMessage, error) {
	var msgs []models.DirectMessage
	err := d.Db.WithContext(ctx).
		Where("conv_key = ?", convKey).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	return msgs, err
}
