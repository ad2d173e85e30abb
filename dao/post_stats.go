package dao

import (
	"Circle/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostStatsDAO struct {
	Repo[models.PostStats]
}

func NewPostStatsDAO(db *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: NewRepo[models.PostStats](db)}
}

func (d *PostStatsDAO) WithDB(tx *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: Repo[models.PostStats]{Db: tx}}
}

// EnsureRow 保证统计行存在（发帖时调用，幂等）
func (d *PostStatsDAO) EnsureRow(ctx context.Context, postID uint64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostStats{PostID: postID, CreatedAt: now, UpdatedAt: now}).Error
}

func (d *PostStatsDAO) GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error) {
	return d.FindByWhere(ctx, "post_id = ?", postID)
}

// BatchGetByPostIDs 批量查询统计，返回 post_id -> stats
func (d *PostStatsDAO) BatchGetByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]models.PostStats, error) {
	result := make(map[uint64]models.PostStats, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var stats []models.PostStats
	err := d.Db.WithContext(ctx).Where("post_id IN ?", postIDs).Find(&stats).Error
	if err != nil {
		return nil, err
	}
	for _, s := range stats {
		result[s.PostID] = s
	}
	return result, nil
}

func (d *PostStatsDAO) IncrLikeCount(ctx context.Context, postID uint64, delta int) error {
	return d.incr(ctx, postID, "like_count", delta)
}

func (d *PostStatsDAO) IncrCommentCount(ctx context.Context, postID uint64, delta int) error {
	return d.incr(ctx, postID, "comment_count", delta)
}

func (d *PostStatsDAO) incr(ctx context.Context, postID uint64, column string, delta int) error {
	if delta < 0 {
		return d.Db.WithContext(ctx).
			Model(&models.PostStats{}).
			Where("post_id = ? AND "+column+" >= ?", postID, -delta).
			Updates(map[string]any{
				column:       gorm.Expr(column+" + ?", delta),
				"updated_at": time.Now(),
			}).Error
	}
	return d.Db.WithContext(ctx).
		Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Updates(map[string]any{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": time.Now(),
		}).Error
}
