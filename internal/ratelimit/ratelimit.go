// Package ratelimit provides fixed-window rate limiting for the public API.
// When no store is configured (nil store), all limits are disabled and
// requests pass. The service degrades gracefully in dev environments
// without Redis.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Store is the minimal counter interface required for rate limiting.
// In production this is implemented by go-redis; in tests and
// single-process deployments by an in-memory map.
type Store interface {
	// Incr atomically increments a counter key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	// Expire sets the TTL on a key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// TTL returns the remaining time-to-live on a key. Zero or negative
	// means expired or missing.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Limiter performs rate limit checks against a Store.
type Limiter struct {
	store  Store
	rate   int
	window time.Duration
}

// New creates a Limiter allowing rate requests per window.
// If store is nil or rate is not positive, the Limiter always allows.
func New(store Store, rate int, window time.Duration) *Limiter {
	return &Limiter{store: store, rate: rate, window: window}
}

// Allow checks whether the given key is within the limit.
// Returns (allowed, retryAfterSecs). On store errors the limiter fails
// open so infra trouble never blocks legitimate traffic.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, int) {
	if l.store == nil || l.rate <= 0 {
		return true, 0
	}

	counter := fmt.Sprintf("rl:api:%s", key)
	count, err := l.store.Incr(ctx, counter)
	if err != nil {
		return true, 0
	}
	if count == 1 {
		l.store.Expire(ctx, counter, l.window)
	}
	if count > int64(l.rate) {
		ttl, _ := l.store.TTL(ctx, counter)
		retry := int(ttl.Seconds())
		if retry < 1 {
			retry = int(l.window.Seconds())
		}
		return false, retry
	}
	return true, 0
}

// Middleware enforces the limit per client IP. Over-limit requests get
// 429 with a Retry-After header.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retry := l.Allow(r.Context(), ClientIP(r))
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"rate limit exceeded","retry_after":%d}`, retry)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the real client IP from a request, handling reverse
// proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := r.RemoteAddr
	if i := strings.LastIndex(addr, ":"); i > 0 {
		return addr[:i]
	}
	return addr
}
