package types

// 创建群请求
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Avatar      string `json:"avatar" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// 更新群信息请求
type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type GroupResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	OwnerID     uint64 `json:"owner_id"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}
