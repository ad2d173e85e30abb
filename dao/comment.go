package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *CommentDAO) WithDB(tx *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: Repo[models.Comment]{Db: tx}}
}

// ListByPost 某帖子的评论，按创建时间正序
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (d *CommentDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// DeleteByID 删除单条评论，返回是否真正删除
func (d *CommentDAO) DeleteByID(ctx context.Context, commentID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteByPost 删帖时清理评论
func (d *CommentDAO) DeleteByPost(ctx context.Context, postID uint64) error {
	return d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Comment{}).Error
}
