package handler

import (
	"Circle/config"
	"Circle/middleware"
	"Circle/pkg/context"
	"Circle/pkg/response"
	"Circle/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GroupMemberHandler struct {
	Config        *config.Config
	MemberService service.IGroupMemberService
}

func (h *GroupMemberHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/group/:group_id/member")
	g.POST("/join", authorize, context.Wrap(h.Join))
	g.POST("/leave", authorize, context.Wrap(h.Leave))
	g.POST("/:user_id/accept", authorize, context.Wrap(h.Accept))
	g.DELETE("/:user_id", authorize, context.Wrap(h.Remove))
	g.GET("/list", authorize, context.Wrap(h.ListMembers))
	g.GET("/pending", authorize, context.Wrap(h.ListPending))
}

// Join 申请入群，等待群主审核
func (h *GroupMemberHandler) Join(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	resp, err := h.MemberService.Join(c.Request.Context(), userID, groupID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (h *GroupMemberHandler) Leave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Leave(c.Request.Context(), userID, groupID); err != nil {
		return err
	}

	response.Success(c, gin.H{"left": true})
	return nil
}

// Accept 群主通过入群申请
func (h *GroupMemberHandler) Accept(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}
	memberID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Accept(c.Request.Context(), userID, groupID, memberID); err != nil {
		return err
	}

	response.Success(c, gin.H{"accepted": true})
	return nil
}

// Remove 群主移除成员，对待审核记录等价于拒绝
func (h *GroupMemberHandler) Remove(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}
	memberID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.MemberService.Remove(c.Request.Context(), userID, groupID, memberID); err != nil {
		return err
	}

	response.Success(c, gin.H{"removed": true})
	return nil
}

func (h *GroupMemberHandler) ListMembers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	members, err := h.MemberService.ListMembers(c.Request.Context(), userID, groupID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"members": members})
	return nil
}

func (h *GroupMemberHandler) ListPending(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	members, err := h.MemberService.ListPending(c.Request.Context(), userID, groupID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"members": members})
	return nil
}
