package dao

import (
	"Circle/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

func (d *PostLikeDAO) WithDB(tx *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: Repo[models.PostLike]{Db: tx}}
}

// IsLiked 记录存在即已点赞
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

func (d *PostLikeDAO) CreateLike(ctx context.Context, postID, userID uint64) error {
	return d.Db.WithContext(ctx).Create(&models.PostLike{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}).Error
}

// DeleteLike 返回是否真正删除（未点赞时删除是空操作）
func (d *PostLikeDAO) DeleteLike(ctx context.Context, postID, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *PostLikeDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// BatchCheckLiked 批量查询点赞状态，返回 post_id -> 是否已赞
func (d *PostLikeDAO) BatchCheckLiked(ctx context.Context, postIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(postIDs))
	if len(postIDs) == 0 || userID == 0 {
		return result, nil
	}
	var likes []models.PostLike
	err := d.Db.WithContext(ctx).
		Where("post_id IN ? AND user_id = ?", postIDs, userID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.PostID] = true
	}
	return result, nil
}
