package socket

import "fmt"

// DirectKey 私信会话键，两个参与者 ID 排序后拼接，保证双方得到同一个键
func DirectKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("direct:%d_%d", a, b)
}

// GroupKey 群聊会话键
func GroupKey(groupID uint64) string {
	return fmt.Sprintf("group:%d", groupID)
}
