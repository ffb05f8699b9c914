// Package middleware provides the HTTP middleware chain.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shashiranjanraj/orderdesk/pkg/clientip"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
)

// bucket tracks a fixed-window request count for one client.
type bucket struct {
	count   int
	resetAt time.Time
}

type limiter struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	buckets   map[string]*bucket
	nextSweep time.Time
	now       func() time.Time
}

func (l *limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextSweep) {
		for k, b := range l.buckets {
			if now.After(b.resetAt) {
				delete(l.buckets, k)
			}
		}
		l.nextSweep = now.Add(l.window)
	}

	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		b = &bucket{resetAt: now.Add(l.window)}
		l.buckets[key] = b
	}

	b.count++
	return b.count <= l.max
}

// RateLimit limits each client IP to max requests per window.
// Clients are keyed by clientip.FromConfig, so X-Forwarded-For only counts
// behind a trusted proxy. A max of zero or less disables limiting.
//
//	middleware.RateLimit(config.RateLimit(), time.Minute)
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return rateLimit(max, window, time.Now, clientip.FromConfig())
}

func rateLimit(max int, window time.Duration, now func() time.Time, ips *clientip.Resolver) func(http.Handler) http.Handler {
	if max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	l := &limiter{max: max, window: window, buckets: map[string]*bucket{}, now: now}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(ips.IP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
