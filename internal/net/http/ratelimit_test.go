package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPRateLimiterAllowsWithinBurst(t *testing.T) {
	t.Parallel()

	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 3, CleanupInterval: time.Minute})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("expected request %d within burst to be allowed", i)
		}
	}
}

func TestIPRateLimiterRejectsBeyondBurst(t *testing.T) {
	t.Parallel()

	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 2, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.Allow("5.6.7.8")
	rl.Allow("5.6.7.8")
	if rl.Allow("5.6.7.8") {
		t.Fatalf("expected the request beyond the burst to be rejected")
	}
}

func TestIPRateLimiterTracksIPsIndependently(t *testing.T) {
	t.Parallel()

	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("expected first IP's first request to be allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("expected a different IP to have its own independent budget")
	}
}

func TestMiddlewareReturns429WhenLimitExceeded(t *testing.T) {
	t.Parallel()

	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be rate-limited, got %d", second.Code)
	}
}

func TestClientIPPrefersForwardedForHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 70.41.3.18")

	if ip := clientIP(req); ip != "203.0.113.9" {
		t.Fatalf("expected the first forwarded address, got %q", ip)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:4444"

	if ip := clientIP(req); ip != "198.51.100.7" {
		t.Fatalf("expected remote addr host, got %q", ip)
	}
}
