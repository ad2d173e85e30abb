package service

import (
	"Circle/dao"
	"Circle/pkg/response"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, postID uint64) error
	Unlike(ctx context.Context, userID, postID uint64) error
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCount(ctx context.Context, postID uint64) (int64, error)
}

type LikeService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	LikeDAO  *dao.PostLikeDAO
	StatsDAO *dao.PostStatsDAO
	PostDAO  *dao.PostDAO
}

// Like 点赞。已点赞时为空操作，计数只在真实状态迁移时变化
func (s *LikeService) Like(ctx context.Context, userID, postID uint64) error {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NewError(http.StatusNotFound, "帖子不存在")
	}

	// 防重复提交
	lockKey := fmt.Sprintf("lock:post:like:%d:%d", userID, postID)
	lock, err := s.Redis.SetNX(ctx, lockKey, 1, 5*time.Second).Result()
	if err == nil && !lock {
		return response.NewError(http.StatusBadRequest, "操作太频繁，请稍后重试")
	}
	defer s.Redis.Del(ctx, lockKey)

	isLiked, err := s.LikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return err
	}
	if isLiked {
		// 已经点赞过，不做任何操作
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.LikeDAO.WithDB(tx).CreateLike(ctx, postID, userID); err != nil {
			// 唯一键兜底：并发重复点赞视为成功，其他存储错误照常上抛
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return s.StatsDAO.WithDB(tx).IncrLikeCount(ctx, postID, 1)
	})
}

// Unlike 取消点赞。未点赞时为空操作
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint64) error {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NewError(http.StatusNotFound, "帖子不存在")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.LikeDAO.WithDB(tx).DeleteLike(ctx, postID, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return s.StatsDAO.WithDB(tx).IncrLikeCount(ctx, postID, -1)
	})
}

func (s *LikeService) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, postID, userID)
}

func (s *LikeService) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return stats.LikeCount, nil
}
