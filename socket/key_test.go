package socket

import "testing"

func TestDirectKey_Deterministic(t *testing.T) {
	if DirectKey(1, 2) != DirectKey(2, 1) {
		t.Fatal("direct key must not depend on argument order")
	}
	if DirectKey(1, 2) != "direct:1_2" {
		t.Fatalf("unexpected key: %s", DirectKey(1, 2))
	}
}

func TestGroupKey(t *testing.T) {
	if GroupKey(42) != "group:42" {
		t.Fatalf("unexpected key: %s", GroupKey(42))
	}
}
