package service

import (
	"Circle/dao"
	"Circle/dao/cache"
	"Circle/models"
	"Circle/pkg/response"
	"Circle/pkg/snowflake"
	"Circle/socket"
	"Circle/types"
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	SendGroupMessage(ctx context.Context, userID uint64, req *types.SendGroupMessageRequest) (*types.MessageResponse, error)
	SendDirectMessage(ctx context.Context, userID uint64, req *types.SendDirectMessageRequest) (*types.MessageResponse, error)
	GroupHistory(ctx context.Context, userID, groupID uint64, limit, offset int) (*types.MessageListResponse, error)
	DirectHistory(ctx context.Context, userID, peerID uint64, limit, offset int) (*types.MessageListResponse, error)
	DeleteGroupMessage(ctx context.Context, userID uint64, messageID int64, isAdmin bool) error
	DeleteDirectMessage(ctx context.Context, userID uint64, messageID int64, isAdmin bool) error
}

type MessageService struct {
	DB            *gorm.DB
	Hub           *socket.Hub
	GroupDAO      *dao.GroupDAO
	MemberDAO     *dao.GroupMemberDAO
	GroupMsgDAO   *dao.GroupMessageDAO
	DirectMsgDAO  *dao.DirectMessageDAO
	PermService   IPermService
	Moderation    IModerationService
	UnreadStorage *cache.UnreadStorage
}

// SendGroupMessage 仅已接受成员可发言；落库成功后广播并累加其他成员未读数
func (s *MessageService) SendGroupMessage(ctx context.Context, userID uint64, req *types.SendGroupMessageRequest) (*types.MessageResponse, error) {
	ok, err := s.MemberDAO.IsMember(ctx, req.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "仅群成员可发送消息")
	}

	if !s.Moderation.Classify(ctx, req.Content) {
		return nil, response.NewError(http.StatusBadRequest, "内容含违规信息，发送失败")
	}

	msg := &models.GroupMessage{
		ID:        snowflake.GenID(),
		GroupID:   req.GroupID,
		SenderID:  userID,
		Content:   req.Content,
		CreatedAt: time.Now().UnixMilli(),
		UpdatedAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}

	convKey := socket.GroupKey(req.GroupID)
	resp := &types.MessageResponse{
		ID:        msg.ID,
		ConvKey:   convKey,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	s.Hub.Broadcast(convKey, types.PushEventMessageNew, resp)

	memberIds, err := s.MemberDAO.GetMemberIds(ctx, req.GroupID)
	if err == nil {
		for _, uid := range memberIds {
			if uid != userID {
				s.UnreadStorage.Incr(ctx, uid, convKey)
			}
		}
	}
	return resp, nil
}

// SendDirectMessage 私信权限沿用对方主页可见性规则
func (s *MessageService) SendDirectMessage(ctx context.Context, userID uint64, req *types.SendDirectMessageRequest) (*types.MessageResponse, error) {
	if req.ReceiverID == userID {
		return nil, response.NewError(http.StatusBadRequest, "不能给自己发私信")
	}

	ok, err := s.PermService.CanMessage(ctx, userID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "无权向该用户发送私信")
	}

	if !s.Moderation.Classify(ctx, req.Content) {
		return nil, response.NewError(http.StatusBadRequest, "内容含违规信息，发送失败")
	}

	convKey := socket.DirectKey(userID, req.ReceiverID)
	msg := &models.DirectMessage{
		ID:         snowflake.GenID(),
		ConvKey:    convKey,
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		CreatedAt:  time.Now().UnixMilli(),
		UpdatedAt:  time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}

	resp := &types.MessageResponse{
		ID:        msg.ID,
		ConvKey:   convKey,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	s.Hub.Broadcast(convKey, types.PushEventMessageNew, resp)
	s.UnreadStorage.Incr(ctx, req.ReceiverID, convKey)
	return resp, nil
}

// GroupHistory 拉群聊历史，按时间正序；读取即清空该会话未读
func (s *MessageService) GroupHistory(ctx context.Context, userID, groupID uint64, limit, offset int) (*types.MessageListResponse, error) {
	ok, err := s.MemberDAO.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "仅群成员可查看消息")
	}

	messages, err := s.GroupMsgDAO.ListByGroup(ctx, groupID, limit, offset)
	if err != nil {
		return nil, err
	}

	convKey := socket.GroupKey(groupID)
	resp := &types.MessageListResponse{
		Messages: make([]types.MessageResponse, 0, len(messages)),
		HasMore:  len(messages) == limit,
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, types.MessageResponse{
			ID:        m.ID,
			ConvKey:   convKey,
			SenderID:  m.SenderID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	s.UnreadStorage.Reset(ctx, userID, convKey)
	return resp, nil
}

func (s *MessageService) DirectHistory(ctx context.Context, userID, peerID uint64, limit, offset int) (*types.MessageListResponse, error) {
	convKey := socket.DirectKey(userID, peerID)
	messages, err := s.DirectMsgDAO.ListByConvKey(ctx, convKey, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.MessageListResponse{
		Messages: make([]types.MessageResponse, 0, len(messages)),
		HasMore:  len(messages) == limit,
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, types.MessageResponse{
			ID:        m.ID,
			ConvKey:   convKey,
			SenderID:  m.SenderID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	s.UnreadStorage.Reset(ctx, userID, convKey)
	return resp, nil
}

// DeleteGroupMessage 发送者、群主、管理员可删，删除后推送撤回事件
func (s *MessageService) DeleteGroupMessage(ctx context.Context, userID uint64, messageID int64, isAdmin bool) error {
	msg, err := s.GroupMsgDAO.FindById(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return response.NewError(http.StatusNotFound, "消息不存在")
	}

	allowed := msg.SenderID == userID || isAdmin
	if !allowed {
		group, err := s.GroupDAO.GetGroup(ctx, msg.GroupID)
		if err != nil {
			return err
		}
		allowed = group != nil && group.OwnerID == userID
	}
	if !allowed {
		return response.NewError(http.StatusForbidden, "无权删除该消息")
	}

	if err := s.DB.WithContext(ctx).Where("id = ?", messageID).Delete(&models.GroupMessage{}).Error; err != nil {
		return err
	}

	convKey := socket.GroupKey(msg.GroupID)
	s.Hub.Broadcast(convKey, types.PushEventMessageDelete, types.MessageDeletePayload{
		ID:      messageID,
		ConvKey: convKey,
	})
	return nil
}

// DeleteDirectMessage 仅发送者或管理员可删
func (s *MessageService) DeleteDirectMessage(ctx context.Context, userID uint64, messageID int64, isAdmin bool) error {
	msg, err := s.DirectMsgDAO.FindById(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return response.NewError(http.StatusNotFound, "消息不存在")
	}
	if msg.SenderID != userID && !isAdmin {
		return response.NewError(http.StatusForbidden, "无权删除该消息")
	}

	if err := s.DB.WithContext(ctx).Where("id = ?", messageID).Delete(&models.DirectMessage{}).Error; err != nil {
		return err
	}

	s.Hub.Broadcast(msg.ConvKey, types.PushEventMessageDelete, types.MessageDeletePayload{
		ID:      messageID,
		ConvKey: msg.ConvKey,
	})
	return nil
}
