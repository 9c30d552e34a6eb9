// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/order"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetDashboard(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Dashboard: func(context.Context) (*order.DashboardStats, error) {
			return &order.DashboardStats{
				TotalOrders:     4,
				TotalRevenue:    1234.5,
				PendingOrders:   2,
				DeliveredOrders: 1,
				TotalProducts:   24,
				TotalCategories: 7,
			}, nil
		},
	})

	rec := serve(h, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.EqualValues(t, 4, body.Data["total_orders"])
	assert.EqualValues(t, 1234.5, body.Data["total_revenue"])
	assert.EqualValues(t, 24, body.Data["total_products"])
}

func TestGetDashboard_StoreError(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Dashboard: func(context.Context) (*order.DashboardStats, error) {
			return nil, errors.New("connection reset")
		},
	})

	rec := serve(h, "/dashboard")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetSystemStats_ReportsUnhealthyDependency(t *testing.T) {
	h := NewHandler(HandlerConfig{
		DBStats:   func() sql.DBStats { return sql.DBStats{OpenConnections: 3} },
		DBPing:    func(context.Context) error { return nil },
		RedisPing: func(context.Context) error { return errors.New("down") },
	})

	rec := serve(h, "/system")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data SystemStatsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Data.Database.Healthy)
	require.NotNil(t, body.Data.Database.Stats)
	assert.Equal(t, 3, body.Data.Database.Stats.OpenConnections)
	assert.False(t, body.Data.Redis.Healthy)
	assert.Nil(t, body.Data.Redis.Stats)
}
