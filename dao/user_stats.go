package dao

import (
	"Circle/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{Repo: NewRepo[models.UserStats](db)}
}

func (d *UserStatsDAO) WithDB(tx *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{Repo: Repo[models.UserStats]{Db: tx}}
}

// EnsureRow 保证统计行存在（注册时调用，幂等）
func (d *UserStatsDAO) EnsureRow(ctx context.Context, userID uint64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserStats{UserID: userID, CreatedAt: now, UpdatedAt: now}).Error
}

func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

// IncrFollowerCount 粉丝数增减，delta 可为负数，不会减到 0 以下
func (d *UserStatsDAO) IncrFollowerCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "follower_count", delta)
}

// IncrFollowingCount 关注数增减
func (d *UserStatsDAO) IncrFollowingCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "following_count", delta)
}

func (d *UserStatsDAO) incr(ctx context.Context, userID uint64, column string, delta int) error {
	if delta < 0 {
		return d.Db.WithContext(ctx).
			Model(&models.UserStats{}).
			Where("user_id = ? AND "+column+" >= ?", userID, -delta).
			Updates(map[string]any{
				column:       gorm.Expr(column+" + ?", delta),
				"updated_at": time.Now(),
			}).Error
	}
	return d.Db.WithContext(ctx).
		Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": time.Now(),
		}).Error
}
