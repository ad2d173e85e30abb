package handler

import (
	"Circle/config"
	"Circle/dao"
	"Circle/pkg/jwt"
	"Circle/pkg/log"
	"Circle/pkg/response"
	"Circle/socket"
	"Circle/types"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WebSocket struct {
	Config    *config.Config
	Hub       *socket.Hub
	MemberDAO *dao.GroupMemberDAO
}

func (h *WebSocket) RegisterRouter(r gin.IRouter) {
	h.registerEvents()
	r.GET("/ws", h.Connect)
}

// Connect 浏览器无法在 websocket 握手带自定义头，token 走查询参数
func (h *WebSocket) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 token")
		return
	}

	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "access", token)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Error("websocket upgrade", zap.Error(err))
		return
	}

	client := h.Hub.NewClient(claims.UserID, conn)
	client.Serve()
}

func (h *WebSocket) registerEvents() {
	h.Hub.OnEvent(types.SubEventConversationJoin, h.onJoin)
	h.Hub.OnEvent(types.SubEventConversationLeave, h.onLeave)
	h.Hub.OnEvent(types.PushEventKeyboard, h.onKeyboard)
}

type convPayload struct {
	ConvKey string `json:"conv_key"`
}

// onJoin 订阅会话前校验归属：群会话要求已接受成员，私信会话要求本人参与
func (h *WebSocket) onJoin(ctx context.Context, c *socket.Client, payload []byte) {
	var p convPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.ConvKey == "" {
		return
	}

	ok, err := h.canSubscribe(ctx, c.UID, p.ConvKey)
	if err != nil {
		log.L.Error("check conversation access", zap.Error(err), zap.String("conv_key", p.ConvKey))
		return
	}
	if !ok {
		log.L.Warn("conversation join denied",
			zap.Uint64("uid", c.UID), zap.String("conv_key", p.ConvKey))
		return
	}

	h.Hub.Join(c, p.ConvKey)
}

func (h *WebSocket) onLeave(_ context.Context, c *socket.Client, payload []byte) {
	var p convPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.ConvKey == "" {
		return
	}
	h.Hub.Leave(c, p.ConvKey)
}

// onKeyboard 正在输入提示，透传给会话内其他订阅者
func (h *WebSocket) onKeyboard(ctx context.Context, c *socket.Client, payload []byte) {
	var p convPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.ConvKey == "" {
		return
	}

	ok, err := h.canSubscribe(ctx, c.UID, p.ConvKey)
	if err != nil || !ok {
		return
	}

	h.Hub.Broadcast(p.ConvKey, types.PushEventKeyboard, types.KeyboardPayload{
		ConvKey: p.ConvKey,
		FromID:  c.UID,
	})
}

func (h *WebSocket) canSubscribe(ctx context.Context, uid uint64, convKey string) (bool, error) {
	switch {
	case strings.HasPrefix(convKey, "group:"):
		groupID, err := strconv.ParseUint(strings.TrimPrefix(convKey, "group:"), 10, 64)
		if err != nil {
			return false, nil
		}
		return h.MemberDAO.IsMember(ctx, groupID, uid)

	case strings.HasPrefix(convKey, "direct:"):
		pair := strings.SplitN(strings.TrimPrefix(convKey, "direct:"), "_", 2)
		if len(pair) != 2 {
			return false, nil
		}
		a, err1 := strconv.ParseUint(pair[0], 10, 64)
		b, err2 := strconv.ParseUint(pair[1], 10, 64)
		if err1 != nil || err2 != nil {
			return false, nil
		}
		return uid == a || uid == b, nil

	default:
		return false, nil
	}
}
