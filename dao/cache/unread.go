package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读消息过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Incr 会话未读数自增
// @params uid     用户ID
// @params convKey 会话键（direct:a_b 或 group:id）
func (u *UnreadStorage) Incr(ctx context.Context, uid uint64, convKey string) {
	pipe := u.redis.Pipeline()
	name := u.name(uid, convKey)
	pipe.Incr(ctx, name)
	pipe.Expire(ctx, name, unreadExpireAt)
	_, _ = pipe.Exec(ctx)
}

// Get 获取会话未读数
func (u *UnreadStorage) Get(ctx context.Context, uid uint64, convKey string) int {
	i, err := u.redis.Get(ctx, u.name(uid, convKey)).Int()
	if err != nil {
		return 0
	}

	return i
}

// Reset 会话未读数清零（拉取历史后调用）
func (u *UnreadStorage) Reset(ctx context.Context, uid uint64, convKey string) {
	u.redis.Del(ctx, u.name(uid, convKey))
}

// im:unread:uid:convKey
func (u *UnreadStorage) name(uid uint64, convKey string) string {
	return fmt.Sprintf("im:unread:%d:%s", uid, convKey)
}
