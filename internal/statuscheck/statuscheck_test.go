// AngelaMos | 2026
// statuscheck_test.go

package statuscheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type memRepo struct {
	checks    []Check
	lastLimit int
}

func (m *memRepo) Create(_ context.Context, c *Check) error {
	m.checks = append(m.checks, *c)
	return nil
}

func (m *memRepo) List(_ context.Context, limit int) ([]Check, error) {
	m.lastLimit = limit
	return append([]Check{}, m.checks...), nil
}

func newTestService(repo *memRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestRecord(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo)

	c, err := svc.Record(context.Background(), CreateRequest{ClientName: "  storefront-web "})
	require.NoError(t, err)
	assert.Equal(t, "storefront-web", c.ClientName)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 2026, c.Timestamp.Year())
	require.Len(t, repo.checks, 1)

	_, err = svc.Record(context.Background(), CreateRequest{ClientName: "   "})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestList_Capped(t *testing.T) {
	repo := &memRepo{}
	_, err := newTestService(repo).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ListLimit, repo.lastLimit)
}

func TestHandler(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(newTestService(&memRepo{})).RegisterRoutes(r)

	do := func(method, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, "/status", strings.NewReader(body)))
		return rec
	}

	rec := do(http.MethodPost, `{"client_name":"mobile"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []Check `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "mobile", body.Data[0].ClientName)
}
