package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/response"
	"Circle/types"
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IGroupService = (*GroupService)(nil)

type IGroupService interface {
	CreateGroup(ctx context.Context, userID uint64, req *types.CreateGroupRequest) (*types.GroupResponse, error)
	UpdateGroup(ctx context.Context, userID, groupID uint64, req *types.UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, userID, groupID uint64, isAdmin bool) error
	GetGroup(ctx context.Context, groupID uint64) (*types.GroupResponse, error)
	ListGroups(ctx context.Context, userID uint64) ([]*types.GroupResponse, error)
}

type GroupService struct {
	DB         *gorm.DB
	GroupDAO   *dao.GroupDAO
	MemberDAO  *dao.GroupMemberDAO
	MessageDAO *dao.GroupMessageDAO
	Moderation IModerationService
}

// CreateGroup 建群的同时把群主写成已接受的成员，member_count 直接置 1
func (s *GroupService) CreateGroup(ctx context.Context, userID uint64, req *types.CreateGroupRequest) (*types.GroupResponse, error) {
	if !s.Moderation.Classify(ctx, req.Name+"\n"+req.Description) {
		return nil, response.NewError(http.StatusBadRequest, "内容含违规信息，创建失败")
	}

	now := time.Now()
	group := &models.Group{
		Name:        req.Name,
		Avatar:      req.Avatar,
		OwnerID:     userID,
		Description: req.Description,
		MemberCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return s.MemberDAO.WithDB(tx).CreateMember(ctx, group.ID, userID,
			models.GroupMemberRoleOwner, models.GroupMemberStatusAccepted)
	})
	if err != nil {
		return nil, err
	}
	return buildGroupResponse(group), nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, userID, groupID uint64, req *types.UpdateGroupRequest) error {
	group, err := s.GroupDAO.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return response.NewError(http.StatusNotFound, "群组不存在")
	}
	if group.OwnerID != userID {
		return response.NewError(http.StatusForbidden, "仅群主可修改群信息")
	}

	updates := map[string]any{}
	if req.Name != nil {
		if !s.Moderation.Classify(ctx, *req.Name) {
			return response.NewError(http.StatusBadRequest, "内容含违规信息，修改失败")
		}
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Description != nil {
		if !s.Moderation.Classify(ctx, *req.Description) {
			return response.NewError(http.StatusBadRequest, "内容含违规信息，修改失败")
		}
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	return s.DB.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ?", groupID).
		Updates(updates).Error
}

// DeleteGroup 解散群，成员与群消息一并清理
func (s *GroupService) DeleteGroup(ctx context.Context, userID, groupID uint64, isAdmin bool) error {
	group, err := s.GroupDAO.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return response.NewError(http.StatusNotFound, "群组不存在")
	}
	if group.OwnerID != userID && !isAdmin {
		return response.NewError(http.StatusForbidden, "仅群主可解散群组")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.MessageDAO.WithDB(tx).DeleteByGroup(ctx, groupID); err != nil {
			return err
		}
		if err := s.MemberDAO.WithDB(tx).DeleteByGroup(ctx, groupID); err != nil {
			return err
		}
		return tx.Where("id = ?", groupID).Delete(&models.Group{}).Error
	})
}

func (s *GroupService) GetGroup(ctx context.Context, groupID uint64) (*types.GroupResponse, error) {
	group, err := s.GroupDAO.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, response.NewError(http.StatusNotFound, "群组不存在")
	}
	return buildGroupResponse(group), nil
}

// ListGroups 当前用户已加入的群
func (s *GroupService) ListGroups(ctx context.Context, userID uint64) ([]*types.GroupResponse, error) {
	groups, err := s.GroupDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]*types.GroupResponse, 0, len(groups))
	for i := range groups {
		items = append(items, buildGroupResponse(&groups[i]))
	}
	return items, nil
}

func buildGroupResponse(group *models.Group) *types.GroupResponse {
	return &types.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Avatar:      group.Avatar,
		OwnerID:     group.OwnerID,
		Description: group.Description,
		MemberCount: group.MemberCount,
		CreatedAt:   group.CreatedAt.Format(time.DateTime),
	}
}
