// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestKeyByIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "10.0.0.7:5123"
	assert.Equal(t, "ip:10.0.0.7", KeyByIP(req))

	req.Header.Set("X-Real-IP", "192.0.2.1")
	assert.Equal(t, "ip:192.0.2.1", KeyByIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.3, 203.0.113.9")
	assert.Equal(t, "ip:203.0.113.9", KeyByIP(req))
}

func TestKeyByIPAndEndpoint_NormalizesIDs(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodPut,
		"/api/admin/products/42",
		nil,
	)
	req.RemoteAddr = "10.0.0.7:5123"
	assert.Equal(t,
		"ip:10.0.0.7:PUT:/api/admin/products/{id}",
		KeyByIPAndEndpoint(req),
	)

	req = httptest.NewRequest(
		http.MethodGet,
		"/api/orders/3f1c2a9e-8d4b-4c6e-9a1f-0b2c3d4e5f60",
		nil,
	)
	req.RemoteAddr = "10.0.0.7:5123"
	assert.Equal(t,
		"ip:10.0.0.7:GET:/api/orders/{id}",
		KeyByIPAndEndpoint(req),
	)
}

func TestRateLimiter_FallsBackToLocalLimiter(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	limiter := NewRateLimiter(rdb, RateLimitConfig{
		Name:     "credentials",
		Limit:    PerMinute(1, 2),
		KeyFunc:  KeyByIPAndEndpoint,
		FailOpen: true,
	})
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.8:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{
		http.StatusNoContent,
		http.StatusNoContent,
		http.StatusTooManyRequests,
	}, statuses)
}

func TestRateLimiter_LimitedResponseUsesEnvelope(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	handler := NewRateLimiter(rdb, RateLimitConfig{Limit: PerMinute(1, 1)}).
		Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

	var rec *httptest.ResponseRecorder
	for range 2 {
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	}

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
}

func TestRouteShape(t *testing.T) {
	assert.Equal(t, "/api/admin/products/{id}", routeShape("/api/admin/products/17"))
	assert.Equal(t, "/api/categories/pulses", routeShape("/api/categories/pulses/"))
}
