package types

type GroupMemberItemDTO struct {
	UserID   uint64 `json:"user_id"`
	Handle   string `json:"handle"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     int    `json:"role"`
	Status   int    `json:"status"`
}

type JoinGroupResponse struct {
	GroupID uint64 `json:"group_id"`
	Status  string `json:"status"` // pending
}
