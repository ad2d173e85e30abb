package handler

import (
	"Circle/config"
	"Circle/middleware"
	"Circle/models"
	"Circle/pkg/context"
	"Circle/pkg/response"
	"Circle/service"
	"Circle/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/follow")
	g.POST("/:user_id", authorize, context.Wrap(h.FollowUser))
	g.DELETE("/:user_id", authorize, context.Wrap(h.UnfollowUser))
	g.GET("/:user_id/status", authorize, context.Wrap(h.GetFollowStatus))
	g.POST("/requests/:user_id/accept", authorize, context.Wrap(h.AcceptRequest))
	g.POST("/requests/:user_id/decline", authorize, context.Wrap(h.DeclineRequest))
	g.GET("/requests", authorize, context.Wrap(h.ListPendingRequests))
	g.GET("/list", authorize, context.Wrap(h.GetFollowList))
	g.GET("/:user_id/followers/count", context.Wrap(h.GetFollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(h.GetFollowingCount))
}

// FollowUser 关注。私密账号产生待审核请求
func (h *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	status, err := h.FollowService.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}

	response.Success(c, &types.FollowResponse{TargetUserID: targetID, Status: status})
	return nil
}

// UnfollowUser 取关。待审核状态等价于撤回申请
func (h *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	response.Success(c, gin.H{"unfollowed": true})
	return nil
}

func (h *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	following, err := h.FollowService.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"following": following})
	return nil
}

// AcceptRequest 私密账号通过关注请求，user_id 为请求方
func (h *Follow) AcceptRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	followerID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.FollowService.Accept(c.Request.Context(), userID, followerID); err != nil {
		return err
	}

	response.Success(c, gin.H{"accepted": true})
	return nil
}

func (h *Follow) DeclineRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	followerID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.FollowService.Decline(c.Request.Context(), userID, followerID); err != nil {
		return err
	}

	response.Success(c, gin.H{"declined": true})
	return nil
}

func (h *Follow) ListPendingRequests(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	items, err := h.FollowService.GetPendingRequests(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"requests": items})
	return nil
}

// GetFollowList 关注/粉丝列表，type=following|follower
func (h *Follow) GetFollowList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.GetFollowListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	var items []models.FollowingQueryResult
	if req.Type == "following" {
		items, err = h.FollowService.GetFollowingList(c.Request.Context(), userID, req.PageSize, req.Offset())
	} else {
		items, err = h.FollowService.GetFollowerList(c.Request.Context(), userID, req.PageSize, req.Offset())
	}
	if err != nil {
		return err
	}

	response.Success(c, &types.FollowListResponse{
		Users:   items,
		HasMore: len(items) == req.PageSize,
	})
	return nil
}

func (h *Follow) GetFollowerCount(c *gin.Context) error {
	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowerCount(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

func (h *Follow) GetFollowingCount(c *gin.Context) error {
	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowingCount(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}
