// Package ratelimit throttles abuse-prone endpoints with a fixed-window
// counter per client address.
package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
)

type window struct {
	count int
	reset time.Time
}

// Limiter counts requests per key inside a fixed interval. Counters are
// dropped once their interval passes.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*window
}

// NewLimiter creates a limiter allowing limit requests per key per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow records one request for key and reports whether it stays within
// the limit.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.reset) {
		l.windows[key] = &window{count: 1, reset: now.Add(l.interval)}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// Middleware rejects requests over the limit with 429, keyed by client IP.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				api.Response{Success: false, Message: "too many requests, slow down"})
			return
		}
		c.Next()
	}
}
