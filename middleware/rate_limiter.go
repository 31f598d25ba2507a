package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	staleWindowAge = 1 * time.Hour
	sweepInterval  = 30 * time.Minute
)

// window counts the submissions a client made since start.
type window struct {
	start time.Time
	used  int
}

// Quota is the outcome of one Take.
type Quota struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetIn is how long until the client's window starts over.
	ResetIn time.Duration
}

// RateLimiter allows each client limit submissions per fixed window. Every
// route wrapped with the same limiter draws from the same client budget.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	now     func() time.Time
	windows map[string]*window
	done    chan struct{}
	once    sync.Once
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.done:
			return
		}
	}
}

// sweep forgets clients whose window ended long ago.
func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, w := range r.windows {
		if now.Sub(w.start) > r.period+staleWindowAge {
			delete(r.windows, client)
		}
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.once.Do(func() { close(r.done) })
}

// Take spends one submission from client's budget when any is left.
func (r *RateLimiter) Take(client string) Quota {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[client]
	if !ok || now.Sub(w.start) >= r.period {
		w = &window{start: now}
		r.windows[client] = w
	}

	q := Quota{Limit: r.limit, ResetIn: w.start.Add(r.period).Sub(now)}
	if w.used < r.limit {
		w.used++
		q.Allowed = true
	}
	q.Remaining = r.limit - w.used
	return q
}

// Allow reports whether client may submit again, spending one submission.
func (r *RateLimiter) Allow(client string) bool {
	return r.Take(client).Allowed
}

// RateLimitMiddleware rejects clients over their budget and reports the
// budget in X-RateLimit-* headers. onLimit renders the rejection; when nil a
// 429 JSON error is sent.
func RateLimitMiddleware(limiter *RateLimiter, onLimit gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		q := limiter.Take(ctx.ClientIP())
		ctx.Header("X-RateLimit-Limit", strconv.Itoa(q.Limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(q.Remaining))
		if q.Allowed {
			ctx.Next()
			return
		}

		retry := int(q.ResetIn.Round(time.Second) / time.Second)
		if retry < 1 {
			retry = 1
		}
		ctx.Header("Retry-After", strconv.Itoa(retry))
		zap.L().Warn("Rate limit exceeded",
			zap.String("ip", ctx.ClientIP()),
			zap.String("path", ctx.FullPath()),
			zap.Duration("resetIn", q.ResetIn))
		if onLimit != nil {
			onLimit(ctx)
		} else {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		}
		ctx.Abort()
	}
}
