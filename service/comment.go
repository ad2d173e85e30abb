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

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	ListComments(ctx context.Context, actorID, postID uint64, limit, offset int) (*types.CommentListResponse, error)
	DeleteComment(ctx context.Context, actorID, commentID uint64, isAdmin bool) error
}

type CommentService struct {
	DB          *gorm.DB
	CommentDAO  *dao.CommentDAO
	PostDAO     *dao.PostDAO
	StatsDAO    *dao.PostStatsDAO
	PermService IPermService
	UserService IUserService
	Moderation  IModerationService
}

// CreateComment 评论前先过可见性与内容审核，评论数随写入 +1
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	post, err := s.PostDAO.FindById(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}

	ok, err := s.PermService.CanComment(ctx, userID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "无权评论该帖子")
	}

	if !s.Moderation.Classify(ctx, req.Content) {
		return nil, response.NewError(http.StatusBadRequest, "内容含违规信息，评论失败")
	}

	now := time.Now()
	comment := &models.Comment{
		PostID:    req.PostID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CommentDAO.WithDB(tx).Create(ctx, comment); err != nil {
			return err
		}
		return s.StatsDAO.WithDB(tx).IncrCommentCount(ctx, req.PostID, 1)
	})
	if err != nil {
		return nil, err
	}

	userMap := s.UserService.BatchGetUserInfo(ctx, []uint64{userID})
	return &types.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		User:      userMap[userID],
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *CommentService) ListComments(ctx context.Context, actorID, postID uint64, limit, offset int) (*types.CommentListResponse, error) {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}

	ok, err := s.PermService.CanViewPost(ctx, actorID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "无权查看该帖子")
	}

	comments, err := s.CommentDAO.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	resp := &types.CommentListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		HasMore:  len(comments) == limit,
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, &types.CommentResponse{
			ID:        c.ID,
			PostID:    c.PostID,
			Content:   c.Content,
			User:      userMap[c.UserID],
			CreatedAt: c.CreatedAt,
		})
	}
	return resp, nil
}

// DeleteComment 评论作者、帖子作者、管理员可删
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID uint64, isAdmin bool) error {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(http.StatusNotFound, "评论不存在")
	}

	allowed := comment.UserID == actorID || isAdmin
	if !allowed {
		post, err := s.PostDAO.FindById(ctx, comment.PostID)
		if err != nil {
			return err
		}
		allowed = post != nil && post.UserID == actorID
	}
	if !allowed {
		return response.NewError(http.StatusForbidden, "无权删除该评论")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.CommentDAO.WithDB(tx).DeleteByID(ctx, commentID)
		if err != nil {
			return err
		}
		// 并发重复删除时只有真正删掉行的那次扣计数
		if !deleted {
			return nil
		}
		return s.StatsDAO.WithDB(tx).IncrCommentCount(ctx, comment.PostID, -1)
	})
}
