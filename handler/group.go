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

type GroupHandler struct {
	Config       *config.Config
	GroupService service.IGroupService
}

func (h *GroupHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/group")
	g.POST("/create", authorize, context.Wrap(h.CreateGroup))
	g.GET("/list", authorize, context.Wrap(h.ListGroups))
	g.GET("/:group_id", authorize, context.Wrap(h.GetGroup))
	g.PUT("/:group_id", authorize, context.Wrap(h.UpdateGroup))
	g.DELETE("/:group_id", authorize, context.Wrap(h.DeleteGroup))
}

// CreateGroup 建群，群主自动入群
func (h *GroupHandler) CreateGroup(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	group, err := h.GroupService.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, group)
	return nil
}

func (h *GroupHandler) ListGroups(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groups, err := h.GroupService.ListGroups(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"groups": groups})
	return nil
}

func (h *GroupHandler) GetGroup(c *gin.Context) error {
	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	group, err := h.GroupService.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		return err
	}

	response.Success(c, group)
	return nil
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	var req types.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.GroupService.UpdateGroup(c.Request.Context(), userID, groupID, &req); err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

// DeleteGroup 解散群
func (h *GroupHandler) DeleteGroup(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	if err := h.GroupService.DeleteGroup(c.Request.Context(), userID, groupID, context.IsAdmin(c)); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
