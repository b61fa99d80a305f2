// Package ratelimit — IP bazlı abonelik (subscription) rate limiting.
//
// Landing page'deki form herkese açık; aynı IP'den kısa sürede çok sayıda
// kayıt gönderilmesi upstream API'yi ve referral ranking'i kirletir.
//
// Tasarım:
// - Her IP için fixed window sayacı tutulur.
// - Window içinde maxAttempts aşılırsa istek reddedilir (429 + Retry-After).
// - Background goroutine süresi dolmuş bucket'ları temizler.
//
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency).
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter, IP bazlı rate limiter.
//
//	limiter := ratelimit.New(5, time.Minute, false)
//	if !limiter.Allow(limiter.ClientIP(r)) { return 429 }
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxAttempts int
	window      time.Duration
	trustProxy  bool
	now         func() time.Time
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// New, yeni limiter oluşturur ve temizleme goroutine'ini başlatır.
//
// maxAttempts <= 0 ise limiter her isteğe izin verir (rate limit kapalı).
// trustProxy: X-Forwarded-For / X-Real-IP sadece true ise okunur. Server
// reverse proxy arkasında değilse bu header'lar client tarafından
// değiştirilebilir ve limit by-pass edilir.
func New(maxAttempts int, window time.Duration, trustProxy bool) *Limiter {
	rl := &Limiter{
		buckets:     make(map[string]*bucket),
		maxAttempts: maxAttempts,
		window:      window,
		trustProxy:  trustProxy,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, verilen IP'nin isteğine izin verilip verilmediğini kontrol eder.
// Her çağrı sayacı artırır.
func (rl *Limiter) Allow(ip string) bool {
	if rl.maxAttempts <= 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists {
		rl.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	if now.Sub(b.windowStart) > rl.window {
		b.count = 1
		b.windowStart = now
		return true
	}

	b.count++
	return b.count <= rl.maxAttempts
}

// RetryAfterSeconds, kalan bekleme süresini saniye cinsinden döner.
// HTTP Retry-After header değeri olarak kullanılır.
func (rl *Limiter) RetryAfterSeconds(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists {
		return 0
	}

	remaining := rl.window - rl.now().Sub(b.windowStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1 // +1 yuvarlama
}

// ClientIP, limiter'ın proxy ayarına göre isteğin IP'sini döner.
func (rl *Limiter) ClientIP(r *http.Request) string {
	return ExtractIP(r, rl.trustProxy)
}

// Close, temizleme goroutine'ini durdurur.
func (rl *Limiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

func (rl *Limiter) cleanupLoop() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *Limiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window {
			delete(rl.buckets, ip)
		}
	}
}

// ExtractIP, HTTP request'ten client IP adresini çıkarır.
//
// trustProxy true ise öncelik sırası:
// 1. X-Forwarded-For (ilk IP)
// 2. X-Real-IP
// 3. RemoteAddr
//
// trustProxy false ise sadece RemoteAddr kullanılır.
func ExtractIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetry, kalan süreyi okunabilir formata çevirir.
// Örn: 120 → "2 min", 45 → "45 s"
func FormatRetry(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%d s", seconds)
}
