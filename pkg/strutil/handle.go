package strutil

import (
	"github.com/speps/go-hashids/v2"
)

// GenHandle 根据数字 ID 生成短的唯一用户 handle。
// 字母表只用小写，避免大小写折叠造成两个 ID 映射到同一 handle
func GenHandle(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return "u_" + e
}
