package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/response"
	"Circle/types"
	"context"
	"net/http"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) (string, error)
	Accept(ctx context.Context, followeeID, followerID uint64) error
	Decline(ctx context.Context, followeeID, followerID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error)
	GetFollowerList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error)
	GetPendingRequests(ctx context.Context, userID uint64) ([]models.FollowingQueryResult, error)
}

type FollowService struct {
	DB        *gorm.DB
	FollowDAO *dao.UserFollowDAO
	StatsDAO  *dao.UserStatsDAO
	UserDAO   *dao.Users
}

// Follow 发起关注。对方公开账号直接生效并更新双方计数；
// 私密账号创建待确认边，计数不变。返回生效后的状态
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) (string, error) {
	if followerID == followeeID {
		return "", response.NewError(http.StatusBadRequest, "不能关注自己")
	}

	followee, err := s.UserDAO.GetByID(ctx, followeeID)
	if err != nil {
		return "", err
	}
	if followee == nil {
		return "", response.NewError(http.StatusNotFound, "用户不存在")
	}

	edge, err := s.FollowDAO.GetEdge(ctx, followerID, followeeID)
	if err != nil {
		return "", err
	}
	if edge != nil {
		// Pending/Accepted 均视为重复请求
		return "", response.NewError(http.StatusBadRequest, "请勿重复关注")
	}

	if followee.IsPrivate {
		if err := s.FollowDAO.CreateEdge(ctx, followerID, followeeID, models.FollowStatusPending); err != nil {
			return "", response.NewError(http.StatusBadRequest, "请勿重复关注")
		}
		return types.FollowResultPending, nil
	}

	// 公开账号：建边 + 双方计数 +1，同一事务
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followDAO := s.FollowDAO.WithDB(tx)
		statsDAO := s.StatsDAO.WithDB(tx)

		if err := followDAO.CreateEdge(ctx, followerID, followeeID, models.FollowStatusAccepted); err != nil {
			return response.NewError(http.StatusBadRequest, "请勿重复关注")
		}
		if err := statsDAO.IncrFollowerCount(ctx, followeeID, 1); err != nil {
			return err
		}
		return statsDAO.IncrFollowingCount(ctx, followerID, 1)
	})
	if err != nil {
		return "", err
	}
	return types.FollowResultFollowing, nil
}

// Accept 被关注人同意请求，Pending -> Accepted，双方计数 +1
func (s *FollowService) Accept(ctx context.Context, followeeID, followerID uint64) error {
	edge, err := s.FollowDAO.GetEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if edge == nil {
		return response.NewError(http.StatusNotFound, "关注请求不存在")
	}
	if edge.Status != models.FollowStatusPending {
		return response.NewError(http.StatusBadRequest, "该请求已处理")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followDAO := s.FollowDAO.WithDB(tx)
		statsDAO := s.StatsDAO.WithDB(tx)

		changed, err := followDAO.UpdateStatus(ctx, followerID, followeeID,
			models.FollowStatusPending, models.FollowStatusAccepted)
		if err != nil {
			return err
		}
		if !changed {
			return response.NewError(http.StatusBadRequest, "该请求已处理")
		}
		if err := statsDAO.IncrFollowerCount(ctx, followeeID, 1); err != nil {
			return err
		}
		return statsDAO.IncrFollowingCount(ctx, followerID, 1)
	})
}

// Decline 被关注人拒绝请求，直接删边，计数不变
func (s *FollowService) Decline(ctx context.Context, followeeID, followerID uint64) error {
	deleted, err := s.FollowDAO.DeleteEdge(ctx, followerID, followeeID, models.FollowStatusPending)
	if err != nil {
		return err
	}
	if !deleted {
		return response.NewError(http.StatusNotFound, "关注请求不存在")
	}
	return nil
}

// Unfollow 取消关注。已接受的边删除并回退计数；
// 待确认的边仅撤回请求，计数不变
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}

	edge, err := s.FollowDAO.GetEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if edge == nil {
		return response.NewError(http.StatusNotFound, "未关注该用户")
	}

	if edge.Status == models.FollowStatusPending {
		_, err := s.FollowDAO.DeleteEdge(ctx, followerID, followeeID, models.FollowStatusPending)
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followDAO := s.FollowDAO.WithDB(tx)
		statsDAO := s.StatsDAO.WithDB(tx)

		deleted, err := followDAO.DeleteEdge(ctx, followerID, followeeID, models.FollowStatusAccepted)
		if err != nil {
			return err
		}
		if !deleted {
			return response.NewError(http.StatusNotFound, "未关注该用户")
		}
		if err := statsDAO.IncrFollowerCount(ctx, followeeID, -1); err != nil {
			return err
		}
		return statsDAO.IncrFollowingCount(ctx, followerID, -1)
	})
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowerCount), nil
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowingCount), nil
}

func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error) {
	return s.FollowDAO.GetFollowingList(ctx, userID, limit, offset)
}

func (s *FollowService) GetFollowerList(ctx context.Context, userID uint64, limit, offset int) ([]models.FollowingQueryResult, error) {
	return s.FollowDAO.GetFollowerList(ctx, userID, limit, offset)
}

func (s *FollowService) GetPendingRequests(ctx context.Context, userID uint64) ([]models.FollowingQueryResult, error) {
	return s.FollowDAO.GetPendingRequests(ctx, userID)
}
