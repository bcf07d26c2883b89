package security

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubhub-backend/internal/clock"
)

func TestLoginThrottle_AllowsUnderLimit(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	for i := 0; i < 4; i++ {
		assert.True(t, throttle.Allow("10.0.0.1"))
		throttle.RecordFailure("10.0.0.1")
	}
	assert.True(t, throttle.Allow("10.0.0.1"))
}

func TestLoginThrottle_BlocksAtLimit(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	for i := 0; i < 5; i++ {
		throttle.RecordFailure("10.0.0.1")
	}
	assert.False(t, throttle.Allow("10.0.0.1"))

	// A different origin is unaffected.
	assert.True(t, throttle.Allow("10.0.0.2"))
}

func TestLoginThrottle_WindowExpiry(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	for i := 0; i < 5; i++ {
		throttle.RecordFailure("10.0.0.1")
	}
	assert.False(t, throttle.Allow("10.0.0.1"))

	// Just inside the window the origin stays blocked.
	clk.Advance(299 * time.Second)
	assert.False(t, throttle.Allow("10.0.0.1"))

	// Once the oldest failures age out, attempts are allowed again.
	clk.Advance(2 * time.Second)
	assert.True(t, throttle.Allow("10.0.0.1"))
}

func TestLoginThrottle_SuccessDoesNotReset(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	for i := 0; i < 4; i++ {
		throttle.RecordFailure("10.0.0.1")
	}
	// A successful login records nothing, so one more failure still blocks.
	assert.True(t, throttle.Allow("10.0.0.1"))
	throttle.RecordFailure("10.0.0.1")
	assert.False(t, throttle.Allow("10.0.0.1"))
}

func TestLoginThrottle_PruneDropsIdleOrigins(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	throttle.RecordFailure("10.0.0.1")
	throttle.RecordFailure("10.0.0.2")
	clk.Advance(301 * time.Second)
	throttle.RecordFailure("10.0.0.3")

	removed := throttle.Prune()
	assert.Equal(t, 2, removed)
	assert.True(t, throttle.Allow("10.0.0.1"))
	assert.True(t, throttle.Allow("10.0.0.3"))
}

func TestLoginThrottle_ConcurrentAccess(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewLoginThrottle(300*time.Second, 5, clk)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				throttle.Allow("10.0.0.1")
				throttle.RecordFailure("10.0.0.1")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			throttle.Prune()
		}
	}()
	wg.Wait()

	// Well past the limit by now, and other origins stay unaffected.
	assert.False(t, throttle.Allow("10.0.0.1"))
	assert.True(t, throttle.Allow("10.0.0.2"))
}
