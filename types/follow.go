package types

import "Circle/models"

const (
	FollowResultPending   = "pending"
	FollowResultFollowing = "following"
)

type FollowResponse struct {
	TargetUserID uint64 `json:"target_user_id"`
	Status       string `json:"status"` // pending | following
}

type GetFollowListRequest struct {
	PageRequest
	Type string `form:"type" binding:"required,oneof=following follower"`
}

type FollowListResponse struct {
	Users   []models.FollowingQueryResult `json:"users"`
	HasMore bool                          `json:"has_more"`
}
