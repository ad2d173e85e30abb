package socket

import (
	"Circle/pkg/log"
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// EventHandler 客户端上行事件回调
type EventHandler func(ctx context.Context, c *Client, payload []byte)

// Envelope websocket 帧格式，上下行一致
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type room struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// Hub 会话键 -> 在线连接集合，进程内状态，重启/重连后由客户端重新建立
type Hub struct {
	rooms cmap.ConcurrentMap[string, *room]

	mu       sync.RWMutex
	handlers map[string]EventHandler
}

func NewHub() *Hub {
	return &Hub{
		rooms:    cmap.New[*room](),
		handlers: make(map[string]EventHandler),
	}
}

// OnEvent 注册上行事件回调
func (h *Hub) OnEvent(event string, fn EventHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[event] = fn
}

// NewClient 接管一条升级完成的连接
func (h *Hub) NewClient(uid uint64, conn *websocket.Conn) *Client {
	return newClient(h, uid, conn)
}

// Join 将连接订阅到会话键
func (h *Hub) Join(c *Client, key string) {
	if c.closed() {
		return
	}
	r := h.rooms.Upsert(key, nil, func(exist bool, valueInMap, _ *room) *room {
		if exist {
			return valueInMap
		}
		return &room{clients: make(map[*Client]struct{})}
	})
	r.mu.Lock()
	r.clients[c] = struct{}{}
	r.mu.Unlock()

	c.trackKey(key)

	// Close 可能与订阅并发，订阅落地后连接已关则立即回收
	if c.closed() {
		c.untrackKey(key)
		r.mu.Lock()
		delete(r.clients, c)
		r.mu.Unlock()
	}
}

// Leave 取消订阅
func (h *Hub) Leave(c *Client, key string) {
	if r, ok := h.rooms.Get(key); ok {
		r.mu.Lock()
		delete(r.clients, c)
		empty := len(r.clients) == 0
		r.mu.Unlock()
		if empty {
			h.rooms.RemoveCb(key, func(_ string, v *room, exists bool) bool {
				if !exists {
					return false
				}
				v.mu.RLock()
				defer v.mu.RUnlock()
				return len(v.clients) == 0
			})
		}
	}
	c.untrackKey(key)
}

// Broadcast 向会话的所有当前订阅者推送，尽力而为
func (h *Hub) Broadcast(key string, event string, payload any) {
	r, ok := h.rooms.Get(key)
	if !ok {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.L.Error("marshal broadcast payload", zap.Error(err), zap.String("event", event))
		return
	}
	data, _ := json.Marshal(Envelope{Event: event, Payload: raw})

	r.mu.RLock()
	targets := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		targets = append(targets, c)
	}
	r.mu.RUnlock()

	for _, c := range targets {
		c.Push(data)
	}
}

// CountSubscribers 会话当前订阅连接数
func (h *Hub) CountSubscribers(key string) int {
	r, ok := h.rooms.Get(key)
	if !ok {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

func (h *Hub) unregister(c *Client) {
	for _, key := range c.drainKeys() {
		if r, ok := h.rooms.Get(key); ok {
			r.mu.Lock()
			delete(r.clients, c)
			r.mu.Unlock()
		}
	}
}

func (h *Hub) dispatch(c *Client, data []byte) {
	event := gjson.GetBytes(data, "event").String()
	if event == "" {
		return
	}

	h.mu.RLock()
	fn, ok := h.handlers[event]
	h.mu.RUnlock()
	if !ok {
		log.L.Warn("unregistered socket event", zap.String("event", event))
		return
	}

	payload := gjson.GetBytes(data, "payload").Raw
	fn(context.Background(), c, []byte(payload))
}
