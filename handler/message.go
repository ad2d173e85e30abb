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

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
}

func (h *Message) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/message")
	g.POST("/group/send", authorize, context.Wrap(h.SendGroupMessage))
	g.POST("/direct/send", authorize, context.Wrap(h.SendDirectMessage))
	g.GET("/group/:group_id/history", authorize, context.Wrap(h.GroupHistory))
	g.GET("/direct/:user_id/history", authorize, context.Wrap(h.DirectHistory))
	g.DELETE("/group/:message_id", authorize, context.Wrap(h.DeleteGroupMessage))
	g.DELETE("/direct/:message_id", authorize, context.Wrap(h.DeleteDirectMessage))
}

// SendGroupMessage 群聊发消息，在线成员实时收到推送
func (h *Message) SendGroupMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SendGroupMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.MessageService.SendGroupMessage(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, msg)
	return nil
}

func (h *Message) SendDirectMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SendDirectMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.MessageService.SendDirectMessage(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, msg)
	return nil
}

// GroupHistory 群聊历史，读取后清未读
func (h *Message) GroupHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	groupID, err := parseUintParam(c, "group_id")
	if err != nil {
		return err
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	page.Normalize()

	history, err := h.MessageService.GroupHistory(c.Request.Context(), userID, groupID, page.PageSize, page.Offset())
	if err != nil {
		return err
	}

	response.Success(c, history)
	return nil
}

func (h *Message) DirectHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	peerID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	page.Normalize()

	history, err := h.MessageService.DirectHistory(c.Request.Context(), userID, peerID, page.PageSize, page.Offset())
	if err != nil {
		return err
	}

	response.Success(c, history)
	return nil
}

func (h *Message) DeleteGroupMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	messageID, err := parseIntParam(c, "message_id")
	if err != nil {
		return err
	}

	if err := h.MessageService.DeleteGroupMessage(c.Request.Context(), userID, messageID, context.IsAdmin(c)); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Message) DeleteDirectMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	messageID, err := parseIntParam(c, "message_id")
	if err != nil {
		return err
	}

	if err := h.MessageService.DeleteDirectMessage(c.Request.Context(), userID, messageID, context.IsAdmin(c)); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
