package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*Limiter, *time.Time) {
	t.Helper()

	rl := New(max, window, false)
	t.Cleanup(rl.Close)

	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestAllowWithinWindow(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "attempt %d", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"), "other IPs are counted separately")
}

func TestWindowReset(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	assert.True(t, rl.Allow("ip"))
	assert.False(t, rl.Allow("ip"))

	*now = now.Add(time.Minute + time.Second)
	assert.True(t, rl.Allow("ip"))
}

func TestDisabled(t *testing.T) {
	rl, _ := newTestLimiter(t, 0, time.Minute)

	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("ip"))
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	assert.Equal(t, 0, rl.RetryAfterSeconds("ip"))

	rl.Allow("ip")
	*now = now.Add(20 * time.Second)
	assert.Equal(t, 41, rl.RetryAfterSeconds("ip"))
}

func TestCleanup(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	rl.Allow("ip")
	*now = now.Add(2 * time.Minute)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.buckets)
}

func TestExtractIPBehindProxy(t *testing.T) {
	r := httptest.NewRequest("POST", "/subscribe", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ExtractIP(r, true))

	r.Header.Set("X-Real-IP", "192.0.2.7")
	assert.Equal(t, "192.0.2.7", ExtractIP(r, true))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", ExtractIP(r, true))
}

func TestExtractIPIgnoresForwardedHeadersByDefault(t *testing.T) {
	r := httptest.NewRequest("POST", "/subscribe", nil)
	r.RemoteAddr = "198.51.100.4:5555"
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	r.Header.Set("X-Real-IP", "192.0.2.7")

	assert.Equal(t, "198.51.100.4", ExtractIP(r, false))
}

// Header döndürerek limit aşılamaz.
func TestRotatingForwardedForSharesBucket(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)

	first := httptest.NewRequest("POST", "/subscribe", nil)
	first.Header.Set("X-Forwarded-For", "203.0.113.1")
	assert.True(t, rl.Allow(rl.ClientIP(first)))

	second := httptest.NewRequest("POST", "/subscribe", nil)
	second.Header.Set("X-Forwarded-For", "203.0.113.2")
	assert.False(t, rl.Allow(rl.ClientIP(second)))
}

func TestFormatRetry(t *testing.T) {
	assert.Equal(t, "45 s", FormatRetry(45))
	assert.Equal(t, "2 min", FormatRetry(120))
}
