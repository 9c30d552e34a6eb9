// AngelaMos | 2026
// ratelimit.go

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const (
	keyPrefix   = "ratelimit"
	sweepEvery  = 5 * time.Minute
	idleEvictAt = 10 * time.Minute
)

type RateLimitConfig struct {
	// Name separates buckets of limiters that share a client key.
	Name     string
	Limit    redis_rate.Limit
	KeyFunc  func(*http.Request) string
	FailOpen bool
}

// RateLimiter enforces a GCRA limit in Redis. While Redis is unreachable
// each instance falls back to an in-memory token bucket per key.
type RateLimiter struct {
	redis  *redis_rate.Limiter
	memory *memoryLimiter
	cfg    RateLimitConfig
}

func NewRateLimiter(rdb *redis.Client, cfg RateLimitConfig) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = KeyByIP
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}

	return &RateLimiter{
		redis:  redis_rate.NewLimiter(rdb),
		memory: newMemoryLimiter(cfg.Limit),
		cfg:    cfg,
	}
}

// Every builds a limit of requests per window with the given burst.
func Every(requests, burst int, window time.Duration) redis_rate.Limit {
	return redis_rate.Limit{Rate: requests, Burst: burst, Period: window}
}

func PerMinute(requests, burst int) redis_rate.Limit {
	return Every(requests, burst, time.Minute)
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("%s:%s:%s", keyPrefix, rl.cfg.Name, rl.cfg.KeyFunc(r))

		res, err := rl.allow(r.Context(), key)
		if err != nil {
			slog.WarnContext(r.Context(), "rate limiter unavailable",
				"limiter", rl.cfg.Name,
				"error", err,
			)
			if rl.cfg.FailOpen {
				next.ServeHTTP(w, r)
				return
			}
			core.JSONError(w, core.NewAppError(err,
				"Service temporarily unavailable",
				http.StatusServiceUnavailable,
				"UNAVAILABLE",
			))
			return
		}

		writeLimitHeaders(w, res)

		if res.Allowed == 0 {
			retry := max(int(res.RetryAfter.Round(time.Second).Seconds()), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			core.JSONError(w, core.NewAppError(nil,
				fmt.Sprintf("Too many requests. Retry after %d seconds.", retry),
				http.StatusTooManyRequests,
				"RATE_LIMITED",
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	res, err := rl.redis.Allow(ctx, key, rl.cfg.Limit)
	if err == nil {
		return res, nil
	}

	slog.DebugContext(ctx, "redis limiter failed, using memory bucket",
		"key", key,
		"error", err,
	)
	return rl.memory.allow(key)
}

func writeLimitHeaders(w http.ResponseWriter, res *redis_rate.Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset",
		strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
}

// KeyByIP identifies the caller by the address closest to this service.
// The last X-Forwarded-For hop is the one our own proxy appended.
func KeyByIP(r *http.Request) string {
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// KeyByIPAndEndpoint gives each credential route its own bucket per caller.
func KeyByIPAndEndpoint(r *http.Request) string {
	return KeyByIP(r) + ":" + r.Method + ":" + routeShape(r.URL.Path)
}

// routeShape collapses uuid and numeric path segments so every product or
// order id shares one bucket.
func routeShape(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		if looksLikeID(s) {
			segments[i] = "{id}"
		}
	}
	return "/" + strings.Join(segments, "/")
}

func looksLikeID(s string) bool {
	if s == "" {
		return false
	}
	if len(s) == 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-' {
		return true
	}
	return strings.Trim(s, "0123456789") == ""
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryLimiter struct {
	mu        sync.Mutex
	limit     redis_rate.Limit
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func newMemoryLimiter(limit redis_rate.Limit) *memoryLimiter {
	return &memoryLimiter{
		limit:     limit,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (m *memoryLimiter) allow(key string) (*redis_rate.Result, error) {
	if m.limit.Rate <= 0 || m.limit.Period <= 0 {
		return nil, fmt.Errorf("memory limiter: invalid limit %v", m.limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	b, ok := m.buckets[key]
	if !ok {
		every := m.limit.Period / time.Duration(m.limit.Rate)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), m.limit.Burst)}
		m.buckets[key] = b
	}
	b.lastSeen = now

	res := &redis_rate.Result{
		Limit:      m.limit,
		RetryAfter: -1,
		ResetAfter: m.limit.Period / time.Duration(m.limit.Rate),
	}

	if b.limiter.AllowN(now, 1) {
		res.Allowed = 1
	} else {
		reservation := b.limiter.ReserveN(now, 1)
		res.RetryAfter = reservation.DelayFrom(now)
		reservation.CancelAt(now)
	}
	res.Remaining = max(int(b.limiter.TokensAt(now)), 0)

	return res, nil
}

func (m *memoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < sweepEvery {
		return
	}
	m.lastSweep = now
	for key, b := range m.buckets {
		if now.Sub(b.lastSeen) > idleEvictAt {
			delete(m.buckets, key)
		}
	}
}
