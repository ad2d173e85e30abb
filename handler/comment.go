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

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/comment")
	g.POST("/create", authorize, context.Wrap(h.CreateComment))
	g.GET("/post/:post_id", authorize, context.Wrap(h.ListComments))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.DeleteComment))
}

func (h *Comment) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.CommentService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, comment)
	return nil
}

func (h *Comment) ListComments(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	page.Normalize()

	comments, err := h.CommentService.ListComments(c.Request.Context(), userID, postID, page.PageSize, page.Offset())
	if err != nil {
		return err
	}

	response.Success(c, comments)
	return nil
}

func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentID, err := parseUintParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, commentID, context.IsAdmin(c)); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
