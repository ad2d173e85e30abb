package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/response"
	"context"
	"net/http"
)

var _ IPermService = (*PermService)(nil)

// IPermService 访问控制判定：谁能看、能评、能私信、能管理
type IPermService interface {
	CanViewProfile(ctx context.Context, actorID, ownerID uint64) (bool, error)
	CanViewPost(ctx context.Context, actorID uint64, post *models.Post) (bool, error)
	CanComment(ctx context.Context, actorID uint64, post *models.Post) (bool, error)
	CanMessage(ctx context.Context, actorID, targetID uint64) (bool, error)
	CanModerate(ctx context.Context, actorID uint64) (bool, error)
}

type PermService struct {
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
}

// CanViewProfile 主页可见性：公开账号所有人可见；
// 私密账号仅本人和已接受的关注者可见
func (s *PermService) CanViewProfile(ctx context.Context, actorID, ownerID uint64) (bool, error) {
	if actorID == ownerID {
		return true, nil
	}

	owner, err := s.UserDAO.GetByID(ctx, ownerID)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, response.NewError(http.StatusNotFound, "用户不存在")
	}
	if !owner.IsPrivate {
		return true, nil
	}

	return s.FollowDAO.IsFollowing(ctx, actorID, ownerID)
}

// CanViewPost 帖子可见性与作者主页一致
func (s *PermService) CanViewPost(ctx context.Context, actorID uint64, post *models.Post) (bool, error) {
	return s.CanViewProfile(ctx, actorID, post.UserID)
}

// CanComment 评论要求先能看到帖子
func (s *PermService) CanComment(ctx context.Context, actorID uint64, post *models.Post) (bool, error) {
	return s.CanViewPost(ctx, actorID, post)
}

// CanMessage 私信权限与查看对方主页一致
func (s *PermService) CanMessage(ctx context.Context, actorID, targetID uint64) (bool, error) {
	return s.CanViewProfile(ctx, actorID, targetID)
}

// CanModerate 平台管理员
func (s *PermService) CanModerate(ctx context.Context, actorID uint64) (bool, error) {
	actor, err := s.UserDAO.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	if actor == nil {
		return false, nil
	}
	return actor.IsAdmin, nil
}
