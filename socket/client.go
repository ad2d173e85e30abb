package socket

import (
	"Circle/pkg/log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
	sendBuffer     = 32
)

// Client 一条已认证的 websocket 连接
type Client struct {
	ID  string
	UID uint64

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once

	// 已订阅的会话键；读循环里订阅，Push 失败时其他 goroutine 反查清理
	subMu   sync.Mutex
	subKeys map[string]struct{}
}

func newClient(hub *Hub, uid uint64, conn *websocket.Conn) *Client {
	return &Client{
		ID:      uuid.NewString(),
		UID:     uid,
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		subKeys: make(map[string]struct{}),
	}
}

func (c *Client) trackKey(key string) {
	c.subMu.Lock()
	c.subKeys[key] = struct{}{}
	c.subMu.Unlock()
}

func (c *Client) untrackKey(key string) {
	c.subMu.Lock()
	delete(c.subKeys, key)
	c.subMu.Unlock()
}

func (c *Client) drainKeys() []string {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	keys := make([]string, 0, len(c.subKeys))
	for k := range c.subKeys {
		keys = append(keys, k)
		delete(c.subKeys, k)
	}
	return keys
}

func (c *Client) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Serve 阻塞运行读循环，直到连接断开
func (c *Client) Serve() {
	go c.writePump()
	c.readPump()
}

// Push 入队一条下行消息，缓冲满则断开该客户端（不保证送达）
func (c *Client) Push(data []byte) {
	select {
	case <-c.done:
	case c.send <- data:
	default:
		log.L.Warn("client send buffer full, dropping connection",
			zap.String("client_id", c.ID), zap.Uint64("uid", c.UID))
		c.Close()
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.hub.unregister(c)
		_ = c.conn.Close()
	})
}

func (c *Client) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// 客户端断开是正常行为
			return
		}
		c.hub.dispatch(c, data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
