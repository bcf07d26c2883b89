package security

import (
	"sync"
	"time"

	"clubhub-backend/internal/clock"
)

// LoginThrottle is a fixed-window attempt counter keyed by client origin.
// Each credential-check entry point owns its own instance. Only failures are
// recorded, so a success does not reset the counter; stale failures simply
// age out of the window.
type LoginThrottle struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	window      time.Duration
	maxAttempts int
	clock       clock.Clock
}

func NewLoginThrottle(window time.Duration, maxAttempts int, clk clock.Clock) *LoginThrottle {
	return &LoginThrottle{
		attempts:    make(map[string][]time.Time),
		window:      window,
		maxAttempts: maxAttempts,
		clock:       clk,
	}
}

// Allow prunes attempts older than the window and reports whether another
// attempt from origin may proceed.
func (t *LoginThrottle) Allow(origin string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.pruneLocked(origin)
	return len(kept) < t.maxAttempts
}

// RecordFailure notes a failed credential check for origin.
func (t *LoginThrottle) RecordFailure(origin string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts[origin] = append(t.pruneLocked(origin), t.clock.Now())
}

// Prune drops origins whose every attempt has aged out. Run periodically so
// one-off visitors do not accumulate for the life of the process.
func (t *LoginThrottle) Prune() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for origin := range t.attempts {
		if kept := t.pruneLocked(origin); len(kept) == 0 {
			delete(t.attempts, origin)
			removed++
		}
	}
	return removed
}

func (t *LoginThrottle) pruneLocked(origin string) []time.Time {
	windowStart := t.clock.Now().Add(-t.window)
	var kept []time.Time
	for _, ts := range t.attempts[origin] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}
	t.attempts[origin] = kept
	return kept
}
