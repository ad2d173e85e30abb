package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/response"
	"Circle/pkg/snowflake"
	"Circle/types"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (*types.PostResponse, error)
	GetPost(ctx context.Context, actorID, postID uint64) (*types.PostResponse, error)
	ListUserPosts(ctx context.Context, actorID, userID uint64, limit, offset int) (*types.PostListResponse, error)
	GetFeed(ctx context.Context, actorID uint64, limit, offset int) (*types.PostListResponse, error)
	DeletePost(ctx context.Context, actorID, postID uint64, isAdmin bool) error
}

type PostService struct {
	DB          *gorm.DB
	PostDAO     *dao.PostDAO
	StatsDAO    *dao.PostStatsDAO
	LikeDAO     *dao.PostLikeDAO
	CommentDAO  *dao.CommentDAO
	FollowDAO   *dao.UserFollowDAO
	PermService IPermService
	UserService IUserService
	Moderation  IModerationService
}

func (s *PostService) CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (*types.PostResponse, error) {
	if !s.Moderation.Classify(ctx, req.Title+"\n"+req.Content) {
		return nil, response.NewError(http.StatusBadRequest, "内容含违规信息，发布失败")
	}

	media, _ := json.Marshal(req.Media)
	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		MediaData: media,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.PostDAO.WithDB(tx).Create(ctx, post); err != nil {
			return err
		}
		return s.StatsDAO.WithDB(tx).EnsureRow(ctx, post.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, post, userID)
}

func (s *PostService) GetPost(ctx context.Context, actorID, postID uint64) (*types.PostResponse, error) {
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

	return s.buildResponse(ctx, post, actorID)
}

func (s *PostService) ListUserPosts(ctx context.Context, actorID, userID uint64, limit, offset int) (*types.PostListResponse, error) {
	ok, err := s.PermService.CanViewProfile(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(http.StatusForbidden, "该账号为私密账号")
	}

	posts, err := s.PostDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.buildListResponse(ctx, posts, actorID, limit)
}

// GetFeed 关注流：自己 + 已关注用户的帖子
func (s *PostService) GetFeed(ctx context.Context, actorID uint64, limit, offset int) (*types.PostListResponse, error) {
	following, err := s.FollowDAO.GetFollowingList(ctx, actorID, 1000, 0)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(following)+1)
	userIDs = append(userIDs, actorID)
	for _, f := range following {
		userIDs = append(userIDs, f.UserID)
	}

	posts, err := s.PostDAO.ListByUsers(ctx, userIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.buildListResponse(ctx, posts, actorID, limit)
}

// DeletePost 仅作者或管理员可删，评论/点赞/统计一并清理
func (s *PostService) DeletePost(ctx context.Context, actorID, postID uint64, isAdmin bool) error {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return response.NewError(http.StatusNotFound, "帖子不存在")
	}
	if post.UserID != actorID && !isAdmin {
		return response.NewError(http.StatusForbidden, "无权删除该帖子")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CommentDAO.WithDB(tx).DeleteByPost(ctx, postID); err != nil {
			return err
		}
		if err := s.LikeDAO.WithDB(tx).Delete(ctx, "post_id = ?", postID); err != nil {
			return err
		}
		if err := s.StatsDAO.WithDB(tx).Delete(ctx, "post_id = ?", postID); err != nil {
			return err
		}
		return s.PostDAO.WithDB(tx).Delete(ctx, "id = ?", postID)
	})
}

func (s *PostService) buildResponse(ctx context.Context, post *models.Post, actorID uint64) (*types.PostResponse, error) {
	list, err := s.buildListResponse(ctx, []models.Post{*post}, actorID, 1)
	if err != nil {
		return nil, err
	}
	if len(list.Posts) == 0 {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}
	return list.Posts[0], nil
}

func (s *PostService) buildListResponse(ctx context.Context, posts []models.Post, actorID uint64, limit int) (*types.PostListResponse, error) {
	resp := &types.PostListResponse{
		Posts:   make([]*types.PostResponse, 0, len(posts)),
		HasMore: len(posts) == limit,
	}
	if len(posts) == 0 {
		return resp, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	userIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		userIDs = append(userIDs, p.UserID)
	}

	statsMap, err := s.StatsDAO.BatchGetByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	likedMap, err := s.LikeDAO.BatchCheckLiked(ctx, postIDs, actorID)
	if err != nil {
		return nil, err
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	for _, p := range posts {
		var media []string
		_ = json.Unmarshal(p.MediaData, &media)

		stats := statsMap[p.ID]
		resp.Posts = append(resp.Posts, &types.PostResponse{
			ID:           p.ID,
			Title:        p.Title,
			Content:      p.Content,
			Media:        media,
			LikeCount:    stats.LikeCount,
			CommentCount: stats.CommentCount,
			IsLiked:      likedMap[p.ID],
			User:         userMap[p.UserID],
			CreatedAt:    p.CreatedAt,
		})
	}
	return resp, nil
}
