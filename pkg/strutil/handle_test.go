package strutil

import (
	"strings"
	"testing"
)

func TestGenHandleLowercaseAndUnique(t *testing.T) {
	seen := make(map[string]int64)
	for id := int64(1); id <= 5000; id++ {
		h := GenHandle("test-salt", id)
		if !strings.HasPrefix(h, "u_") {
			t.Fatalf("handle %q missing prefix", h)
		}
		if h != strings.ToLower(h) {
			t.Fatalf("handle %q not lowercase", h)
		}
		if prev, ok := seen[h]; ok {
			t.Fatalf("handle %q collides: id %d and %d", h, prev, id)
		}
		seen[h] = id
	}
}
