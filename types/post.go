package types

import "time"

type CreatePostRequest struct {
	Title   string   `json:"title" binding:"omitempty,max=100"`
	Content string   `json:"content" binding:"required,max=5000"`
	Media   []string `json:"media" binding:"omitempty,max=9"`
}

type PostResponse struct {
	ID           uint64      `json:"id"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Media        []string    `json:"media"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"`
	User         UserProfile `json:"user"`
	CreatedAt    time.Time   `json:"created_at"`
}

type PostListResponse struct {
	Posts   []*PostResponse `json:"posts"`
	HasMore bool            `json:"has_more"`
}
