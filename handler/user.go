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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/user")
	g.GET("/me", authorize, context.Wrap(h.GetMe))
	g.PUT("/me", authorize, context.Wrap(h.UpdateProfile))
	g.GET("/:user_id", authorize, context.Wrap(h.GetProfile))
}

func (h *User) GetMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// GetProfile 查看他人主页，私密账号仅粉丝可见
func (h *User) GetProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
