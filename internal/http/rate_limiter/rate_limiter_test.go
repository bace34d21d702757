package rate_limiter

import (
	"testing"
	"time"
)

func TestLimiter_BurstPerClient(t *testing.T) {
	l := New(1, 2)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("expected the burst to be allowed")
	}
	if l.Allow("a") {
		t.Error("expected the third request to be limited")
	}
	if !l.Allow("b") {
		t.Error("expected another client to have its own bucket")
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	l := New(1, 1)
	l.GetVisitor("a")
	l.visitors["a"].lastSeen = time.Now().Add(-10 * time.Minute)
	l.GetVisitor("b")

	l.cleanup(5 * time.Minute)

	if _, ok := l.visitors["a"]; ok {
		t.Error("expected idle visitor to be removed")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Error("expected recent visitor to be kept")
	}
}
