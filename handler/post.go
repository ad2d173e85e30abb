package handler

import (
	"Circle/config"
	"Circle/middleware"
	"Circle/pkg/context"
	"Circle/pkg/response"
	"Circle/service"
	"Circle/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	LikeService service.ILikeService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/post")
	g.POST("/create", authorize, context.Wrap(h.CreatePost))
	g.GET("/feed", authorize, context.Wrap(h.GetFeed))
	g.GET("/user/:user_id", authorize, context.Wrap(h.ListUserPosts))
	g.GET("/:post_id", authorize, context.Wrap(h.GetPost))
	g.DELETE("/:post_id", authorize, context.Wrap(h.DeletePost))
	g.POST("/:post_id/like", authorize, context.Wrap(h.LikePost))
	g.DELETE("/:post_id/like", authorize, context.Wrap(h.UnlikePost))
	g.GET("/:post_id/like/count", context.Wrap(h.GetLikeCount))
}

// CreatePost 发帖，内容先过审核
func (h *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	post, err := h.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, post)
	return nil
}

// GetFeed 自己与已关注用户的帖子流
func (h *Post) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	page.Normalize()

	feed, err := h.PostService.GetFeed(c.Request.Context(), userID, page.PageSize, page.Offset())
	if err != nil {
		return err
	}

	response.Success(c, feed)
	return nil
}

func (h *Post) ListUserPosts(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	page.Normalize()

	posts, err := h.PostService.ListUserPosts(c.Request.Context(), userID, targetID, page.PageSize, page.Offset())
	if err != nil {
		return err
	}

	response.Success(c, posts)
	return nil
}

func (h *Post) GetPost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.PostService.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}

	response.Success(c, post)
	return nil
}

func (h *Post) DeletePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.PostService.DeletePost(c.Request.Context(), userID, postID, context.IsAdmin(c)); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// LikePost 点赞，重复点赞为幂等
func (h *Post) LikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.LikeService.Like(c.Request.Context(), userID, postID); err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

func (h *Post) UnlikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.LikeService.Unlike(c.Request.Context(), userID, postID); err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

func (h *Post) GetLikeCount(c *gin.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	count, err := h.LikeService.GetLikeCount(c.Request.Context(), postID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}
