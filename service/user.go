package service

import (
	"Circle/dao"
	"Circle/pkg/response"
	"Circle/types"
	"context"
	"net/http"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, actorID, userID uint64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
	BatchGetUserInfo(ctx context.Context, ids []uint64) map[uint64]types.UserProfile
}

type UserService struct {
	UserDAO     *dao.Users
	StatsDAO    *dao.UserStatsDAO
	PermService IPermService
}

func (s *UserService) GetProfile(ctx context.Context, actorID, userID uint64) (*types.UserProfile, error) {
	ok, err := s.PermService.CanViewProfile(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "该账号为私密账号")
	}

	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	profile := &types.UserProfile{
		ID:        user.ID,
		Handle:    user.Handle,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		IsPrivate: user.IsPrivate,
	}

	// 计数以 user_stats 为准
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		profile.FollowerCount = int64(stats.FollowerCount)
		profile.FollowingCount = int64(stats.FollowingCount)
	}

	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	fields := make(map[string]any)
	if req.Nickname != nil {
		fields["nickname"] = *req.Nickname
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Private != nil {
		fields["is_private"] = *req.Private
	}
	if len(fields) == 0 {
		return nil
	}
	return s.UserDAO.UpdateProfile(ctx, userID, fields)
}

func (s *UserService) BatchGetUserInfo(ctx context.Context, ids []uint64) map[uint64]types.UserProfile {
	result := make(map[uint64]types.UserProfile, len(ids))
	users, err := s.UserDAO.BatchGetByIDs(ctx, ids)
	if err != nil {
		return result
	}
	for id, u := range users {
		result[id] = types.UserProfile{
			ID:        u.ID,
			Handle:    u.Handle,
			Nickname:  u.Nickname,
			Avatar:    u.Avatar,
			IsPrivate: u.IsPrivate,
		}
	}
	return result
}
