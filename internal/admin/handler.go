// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/order"
)

type DashboardFunc func(ctx context.Context) (*order.DashboardStats, error)

type PingFunc func(ctx context.Context) error

type HandlerConfig struct {
	Dashboard  DashboardFunc
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	RedisPing  PingFunc
	DBPing     PingFunc
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterRoutes expects r to be scoped to /admin and already guarded by
// RequireAdmin.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/system", h.GetSystemStats)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Dashboard == nil {
		core.NotFound(w, "dashboard")
		return
	}

	stats, err := h.cfg.Dashboard(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

// GetSystemStats reports pool usage and reachability of the database and
// Redis alongside process runtime figures.
func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := SystemStatsResponse{
		Database: DatabaseStatus{Healthy: healthy(ctx, h.cfg.DBPing)},
		Redis:    RedisStatus{Healthy: healthy(ctx, h.cfg.RedisPing)},
		Runtime:  readRuntime(),
	}

	if h.cfg.DBStats != nil {
		s := h.cfg.DBStats()
		resp.Database.Stats = &DBPoolStats{
			MaxOpenConnections: s.MaxOpenConnections,
			OpenConnections:    s.OpenConnections,
			InUse:              s.InUse,
			Idle:               s.Idle,
			WaitCount:          s.WaitCount,
			WaitDuration:       s.WaitDuration.String(),
			MaxIdleClosed:      s.MaxIdleClosed,
			MaxIdleTimeClosed:  s.MaxIdleTimeClosed,
			MaxLifetimeClosed:  s.MaxLifetimeClosed,
		}
	}

	if h.cfg.RedisStats != nil {
		if s := h.cfg.RedisStats(); s != nil {
			resp.Redis.Stats = &RedisPoolStats{
				Hits:       s.Hits,
				Misses:     s.Misses,
				Timeouts:   s.Timeouts,
				TotalConns: s.TotalConns,
				IdleConns:  s.IdleConns,
				StaleConns: s.StaleConns,
			}
		}
	}

	core.OK(w, resp)
}

// healthy treats an unconfigured probe as healthy.
func healthy(ctx context.Context, ping PingFunc) bool {
	return ping == nil || ping(ctx) == nil
}

func readRuntime() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     m.Alloc,
		MemSys:       m.Sys,
		NumGC:        m.NumGC,
	}
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
	MaxIdleClosed      int64  `json:"max_idle_closed"`
	MaxIdleTimeClosed  int64  `json:"max_idle_time_closed"`
	MaxLifetimeClosed  int64  `json:"max_lifetime_closed"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
