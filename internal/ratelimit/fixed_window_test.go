package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(cfg Config) (*FixedWindow, func(d time.Duration)) {
	l := NewFixedWindow(cfg)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return l, advance
}

func TestFixedWindow_AllowWithinBudget(t *testing.T) {
	l, _ := newTestLimiter(Config{Window: time.Minute, MaxAttempts: 3})

	for i := 1; i <= 3; i++ {
		if !l.Allow("a@example.com") {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}
	if l.Allow("a@example.com") {
		t.Fatalf("4th attempt in the same window should be rejected")
	}
	// Rejections must not consume budget for the next window either.
	if l.Allow("a@example.com") {
		t.Fatalf("5th attempt in the same window should be rejected")
	}
}

func TestFixedWindow_WindowReset(t *testing.T) {
	l, advance := newTestLimiter(Config{Window: time.Minute, MaxAttempts: 3})

	for i := 0; i < 3; i++ {
		l.Allow("a@example.com")
	}
	if l.Allow("a@example.com") {
		t.Fatalf("expected rejection before window reset")
	}

	advance(61 * time.Second)

	if !l.Allow("a@example.com") {
		t.Fatalf("attempt after window elapsed should reset and be allowed")
	}
	if !l.Allow("a@example.com") {
		t.Fatalf("counter should have restarted at 1 after reset")
	}
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(Config{Window: time.Minute, MaxAttempts: 1})

	if !l.Allow("a@example.com") {
		t.Fatalf("first key should be allowed")
	}
	if l.Allow("a@example.com") {
		t.Fatalf("first key should be exhausted")
	}
	if !l.Allow("b@example.com") {
		t.Fatalf("second key has its own budget")
	}
}

func TestFixedWindow_ZeroConfigFallsBackToDefaults(t *testing.T) {
	l := NewFixedWindow(Config{})
	if l.cfg.Window != time.Minute || l.cfg.MaxAttempts != 3 {
		t.Fatalf("unexpected defaults: %+v", l.cfg)
	}
}
