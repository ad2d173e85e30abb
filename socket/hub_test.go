package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// 起一个测试服务端：每条连接交给 hub，join 事件订阅 payload 里的 key
func newTestServer(t *testing.T, hub *Hub, uid uint64) *httptest.Server {
	t.Helper()

	hub.OnEvent("conversation.join", func(_ context.Context, c *Client, payload []byte) {
		key := gjson.GetBytes(payload, "key").String()
		hub.Join(c, key)
	})
	hub.OnEvent("conversation.leave", func(_ context.Context, c *Client, payload []byte) {
		key := gjson.GetBytes(payload, "key").String()
		hub.Leave(c, key)
	})

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		client := hub.NewClient(uid, conn)
		go client.Serve()
	}))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	raw, _ := json.Marshal(payload)
	data, _ := json.Marshal(Envelope{Event: event, Payload: raw})
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func waitSubscribers(t *testing.T, hub *Hub, key string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.CountSubscribers(key) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("key %s: expected %d subscribers, got %d", key, want, hub.CountSubscribers(key))
}

func TestHub_JoinBroadcast(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub, 1)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	key := GroupKey(7)
	sendEvent(t, conn, "conversation.join", map[string]string{"key": key})
	waitSubscribers(t, hub, key, 1)

	hub.Broadcast(key, "message.new", map[string]any{"content": "hello"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got := gjson.GetBytes(data, "event").String(); got != "message.new" {
		t.Fatalf("expected event message.new, got %s", got)
	}
	if got := gjson.GetBytes(data, "payload.content").String(); got != "hello" {
		t.Fatalf("expected payload content hello, got %s", got)
	}
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub, 1)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	key := GroupKey(8)
	sendEvent(t, conn, "conversation.join", map[string]string{"key": key})
	waitSubscribers(t, hub, key, 1)

	sendEvent(t, conn, "conversation.leave", map[string]string{"key": key})
	waitSubscribers(t, hub, key, 0)

	hub.Broadcast(key, "message.new", map[string]any{"content": "dropped"})

	_ = conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected no delivery after leave")
	}
}

func TestHub_DisconnectCleansSubscription(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub, 1)
	defer srv.Close()

	conn := dial(t, srv)

	key := DirectKey(1, 2)
	sendEvent(t, conn, "conversation.join", map[string]string{"key": key})
	waitSubscribers(t, hub, key, 1)

	conn.Close()
	waitSubscribers(t, hub, key, 0)

	// 断开后的广播不应 panic，也无接收者
	hub.Broadcast(key, "message.new", map[string]any{"content": "nobody"})
}

// 订阅表被读循环写、被 Push 触发的 Close 读，两边并发不应竞态，
// 关闭后房间里也不应残留该连接
func TestHub_CloseDuringSubscribe(t *testing.T) {
	hub := NewHub()

	clientCh := make(chan *Client, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		clientCh <- hub.NewClient(1, conn)
	}))
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	client := <-clientCh

	const keyCount = 8
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			key := GroupKey(uint64(i % keyCount))
			hub.Join(client, key)
			hub.Leave(client, key)
		}
	}()

	client.Close()
	<-done

	for i := 0; i < keyCount; i++ {
		key := GroupKey(uint64(i))
		if n := hub.CountSubscribers(key); n != 0 {
			t.Fatalf("key %s: expected 0 subscribers after close, got %d", key, n)
		}
	}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub, 1)
	defer srv.Close()

	key := GroupKey(9)
	conns := make([]*websocket.Conn, 0, 3)
	for i := 0; i < 3; i++ {
		conn := dial(t, srv)
		defer conn.Close()
		sendEvent(t, conn, "conversation.join", map[string]string{"key": key})
		conns = append(conns, conn)
	}
	waitSubscribers(t, hub, key, 3)

	hub.Broadcast(key, "message.new", map[string]any{"seq": 1})

	for i, conn := range conns {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("conn %d read: %v", i, err)
		}
		if got := gjson.GetBytes(data, "payload.seq").Int(); got != 1 {
			t.Fatalf("conn %d: expected seq 1, got %d", i, got)
		}
	}
}
