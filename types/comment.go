package types

import "time"

type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommentResponse struct {
	ID        uint64      `json:"id"`
	PostID    uint64      `json:"post_id"`
	Content   string      `json:"content"`
	User      UserProfile `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

type CommentListResponse struct {
	Comments []*CommentResponse `json:"comments"`
	HasMore  bool               `json:"has_more"`
}
