package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) WithDB(tx *gorm.DB) *PostDAO {
	return &PostDAO{Repo: Repo[models.Post]{Db: tx}}
}

// ListByUser 某用户的帖子，按创建时间倒序
func (d *PostDAO) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListByUsers 一批用户的帖子（关注流），按创建时间倒序
func (d *PostDAO) ListByUsers(ctx context.Context, userIDs []uint64, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if len(userIDs) == 0 {
		return posts, nil
	}
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}
