package ratelimit

import (
	"sync"
	"time"
)

// Config bounds attempts per key within a fixed time window.
type Config struct {
	Window      time.Duration
	MaxAttempts int
}

func DefaultConfig() Config {
	return Config{
		Window:      time.Minute,
		MaxAttempts: 3,
	}
}

type entry struct {
	attempts    int
	windowStart time.Time
}

// FixedWindow is an in-process fixed-window counter keyed by an arbitrary
// string (the verification flow keys it by email address).
//
// Fixed windows admit up to 2x the nominal rate across a window boundary;
// that is an accepted trade-off of the strategy, not a bug. State is held in
// memory with no eviction and is lost on restart, so in a multi-instance
// deployment each instance enforces its own independent budget.
type FixedWindow struct {
	cfg Config

	mu      sync.Mutex
	entries map[string]*entry

	now func() time.Time
}

func NewFixedWindow(cfg Config) *FixedWindow {
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	return &FixedWindow{
		cfg:     cfg,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow records an attempt for key and reports whether it is within budget.
//
// The first attempt for a key, or the first after its window elapsed, resets
// the counter to 1 and is allowed. Once MaxAttempts is reached further
// attempts in the same window are rejected without incrementing the counter.
func (l *FixedWindow) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) > l.cfg.Window {
		l.entries[key] = &entry{attempts: 1, windowStart: now}
		return true
	}

	if e.attempts >= l.cfg.MaxAttempts {
		return false
	}

	e.attempts++
	return true
}
