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

var _ IGroupMemberService = (*GroupMemberService)(nil)

type IGroupMemberService interface {
	Join(ctx context.Context, userID, groupID uint64) (*types.JoinGroupResponse, error)
	Accept(ctx context.Context, ownerID, groupID, memberID uint64) error
	Remove(ctx context.Context, ownerID, groupID, memberID uint64) error
	Leave(ctx context.Context, userID, groupID uint64) error
	ListMembers(ctx context.Context, actorID, groupID uint64) ([]types.GroupMemberItemDTO, error)
	ListPending(ctx context.Context, ownerID, groupID uint64) ([]types.GroupMemberItemDTO, error)
}

type GroupMemberService struct {
	DB        *gorm.DB
	GroupDAO  *dao.GroupDAO
	MemberDAO *dao.GroupMemberDAO
}

// Join 申请入群，落一条待审核记录，不动 member_count
func (s *GroupMemberService) Join(ctx context.Context, userID, groupID uint64) (*types.JoinGroupResponse, error) {
	group, err := s.GroupDAO.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, response.NewError(http.StatusNotFound, "群组不存在")
	}

	existing, err := s.MemberDAO.FindByUserId(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.GroupMemberStatusAccepted {
			return nil, response.NewError(http.StatusBadRequest, "已是群成员")
		}
		return nil, response.NewError(http.StatusBadRequest, "入群申请审核中")
	}

	err = s.MemberDAO.CreateMember(ctx, groupID, userID,
		models.GroupMemberRoleMember, models.GroupMemberStatusPending)
	if err != nil {
		return nil, err
	}
	return &types.JoinGroupResponse{GroupID: groupID, Status: "pending"}, nil
}

// Accept 群主通过入群申请，状态翻转与计数 +1 同一事务
func (s *GroupMemberService) Accept(ctx context.Context, ownerID, groupID, memberID uint64) error {
	if err := s.requireOwner(ctx, ownerID, groupID); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err := s.MemberDAO.WithDB(tx).UpdateStatus(ctx, groupID, memberID,
			models.GroupMemberStatusPending, models.GroupMemberStatusAccepted)
		if err != nil {
			return err
		}
		if !changed {
			return response.NewError(http.StatusNotFound, "该用户没有待审核的申请")
		}
		return s.GroupDAO.WithDB(tx).IncrMemberCount(ctx, groupID, 1)
	})
}

// Remove 群主移除成员或拒绝申请。已接受的成员被移除时计数 -1
func (s *GroupMemberService) Remove(ctx context.Context, ownerID, groupID, memberID uint64) error {
	if err := s.requireOwner(ctx, ownerID, groupID); err != nil {
		return err
	}
	if memberID == ownerID {
		return response.NewError(http.StatusBadRequest, "群主不能移除自己")
	}

	member, err := s.MemberDAO.FindByUserId(ctx, groupID, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return response.NewError(http.StatusNotFound, "该用户不在群组中")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.MemberDAO.WithDB(tx).DeleteMember(ctx, groupID, memberID)
		if err != nil {
			return err
		}
		if deleted && member.Status == models.GroupMemberStatusAccepted {
			return s.GroupDAO.WithDB(tx).IncrMemberCount(ctx, groupID, -1)
		}
		return nil
	})
}

// Leave 退群。群主不能退，只能解散；待审核状态视为撤回申请
func (s *GroupMemberService) Leave(ctx context.Context, userID, groupID uint64) error {
	member, err := s.MemberDAO.FindByUserId(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return response.NewError(http.StatusNotFound, "未加入该群组")
	}
	if member.Role == models.GroupMemberRoleOwner {
		return response.NewError(http.StatusBadRequest, "群主不能退群，请先解散群组")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.MemberDAO.WithDB(tx).DeleteMember(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if deleted && member.Status == models.GroupMemberStatusAccepted {
			return s.GroupDAO.WithDB(tx).IncrMemberCount(ctx, groupID, -1)
		}
		return nil
	})
}

// ListMembers 群成员列表，仅成员可见
func (s *GroupMemberService) ListMembers(ctx context.Context, actorID, groupID uint64) ([]types.GroupMemberItemDTO, error) {
	ok, err := s.MemberDAO.IsMember(ctx, groupID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "仅群成员可查看")
	}

	members, err := s.MemberDAO.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toMemberDTOs(members), nil
}

// ListPending 待审核申请，仅群主可见
func (s *GroupMemberService) ListPending(ctx context.Context, ownerID, groupID uint64) ([]types.GroupMemberItemDTO, error) {
	if err := s.requireOwner(ctx, ownerID, groupID); err != nil {
		return nil, err
	}
	members, err := s.MemberDAO.GetPendingMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toMemberDTOs(members), nil
}

func (s *GroupMemberService) requireOwner(ctx context.Context, userID, groupID uint64) error {
	group, err := s.GroupDAO.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return response.NewError(http.StatusNotFound, "群组不存在")
	}
	if group.OwnerID != userID {
		return response.NewError(http.StatusForbidden, "仅群主可执行该操作")
	}
	return nil
}

func toMemberDTOs(members []models.GroupMemberItem) []types.GroupMemberItemDTO {
	items := make([]types.GroupMemberItemDTO, 0, len(members))
	for _, m := range members {
		items = append(items, types.GroupMemberItemDTO{
			UserID:   m.UserID,
			Handle:   m.Handle,
			Nickname: m.Nickname,
			Avatar:   m.Avatar,
			Role:     m.Role,
			Status:   m.Status,
		})
	}
	return items
}
