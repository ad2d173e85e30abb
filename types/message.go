package types

type SendGroupMessageRequest struct {
	GroupID uint64 `json:"group_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type SendDirectMessageRequest struct {
	ReceiverID uint64 `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required,min=1,max=2000"`
}

type MessageResponse struct {
	ID        int64  `json:"id"`
	ConvKey   string `json:"conv_key"`
	SenderID  uint64 `json:"sender_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"` // 毫秒
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Unread   int               `json:"unread"`
	HasMore  bool              `json:"has_more"`
}

// 下行推送事件名
const (
	PushEventMessageNew    = "message.new"
	PushEventMessageDelete = "message.delete"
	PushEventKeyboard      = "im.message.keyboard"
)

// 上行事件名
const (
	SubEventConversationJoin  = "conversation.join"
	SubEventConversationLeave = "conversation.leave"
)

type MessageDeletePayload struct {
	ID      int64  `json:"id"`
	ConvKey string `json:"conv_key"`
}

type KeyboardPayload struct {
	ConvKey string `json:"conv_key"`
	FromID  uint64 `json:"from_id"`
}
