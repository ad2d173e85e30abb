package dao

import (
	"Circle/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

func (d *UserFollowDAO) WithDB(tx *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{Repo: Repo[models.UserFollow]{Db: tx}}
}

// GetEdge 查询关注边（任意状态），不存在返回 (nil, nil)
func (d *UserFollowDAO) GetEdge(ctx context.Context, followerID, followeeID uint64) (*models.UserFollow, error) {
	return d.FindByWhere(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// IsFollowing 检查是否已关注（仅 Accepted）
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var follow models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ? AND status = ?", followerID, followeeID, models.FollowStatusAccepted).
		First(&follow).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateEdge 新建关注边
func (d *UserFollowDAO) CreateEdge(ctx context.Context, followerID, followeeID uint64, status int) error {
	now := time.Now()
	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return d.Db.WithContext(ctx).Create(&follow).Error
}

// UpdateStatus 按当前状态迁移，返回是否真正发生了变更
func (d *UserFollowDAO) UpdateStatus(ctx context.Context, followerID, followeeID uint64, from, to int) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ? AND status = ?", followerID, followeeID, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteEdge 删除关注边，返回是否真正删除
func (d *UserFollowDAO) DeleteEdge(ctx context.Context, followerID, followeeID uint64, status int) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ? AND status = ?", followerID, followeeID, status).
		Delete(&models.UserFollow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountAccepted 统计 Accepted 边数量，column 为 follower_id 或 followee_id
func (d *UserFollowDAO) CountAccepted(ctx context.Context, column string, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where(column+" = ? AND status = ?", userID, models.FollowStatusAccepted).
		Count(&count).Error
	return count, err
}

// GetFollowingList 获取用户关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error) {
	var follows []models.FollowingQueryResult
	err := d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("u.id as user_id, u.handle, u.nickname, u.avatar, uf.status, uf.updated_at as follow_at").
		Joins("LEFT JOIN users u ON uf.followee_id = u.id").
		Where("uf.follower_id = ? AND uf.status = ?", userID, models.FollowStatusAccepted).
		Order("uf.updated_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&follows).Error
	return follows, err
}

// GetFollowerList 获取粉丝列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowerList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error) {
	var follows []models.FollowingQueryResult
	err := d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("u.id as user_id, u.handle, u.nickname, u.avatar, uf.status, uf.updated_at as follow_at").
		Joins("LEFT JOIN users u ON uf.follower_id = u.id").
		Where("uf.followee_id = ? AND uf.status = ?", userID, models.FollowStatusAccepted).
		Order("uf.updated_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&follows).Error
	return follows, err
}

// GetPendingRequests 获取待处理的关注请求（自己是被关注人）
func (d *UserFollowDAO) GetPendingRequests(ctx context.Context, userID uint64) ([]models.FollowingQueryResult, error) {
	var follows []models.FollowingQueryResult
	err := d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("u.id as user_id, u.handle, u.nickname, u.avatar, uf.status, uf.created_at as follow_at").
		Joins("LEFT JOIN users u ON uf.follower_id = u.id").
		Where("uf.followee_id = ? AND uf.status = ?", userID, models.FollowStatusPending).
		Order("uf.created_at DESC").
		Scan(&follows).Error
	return follows, err
}
