// AngelaMos | 2026
// banner_test.go

package banner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/core"
)

type memRepo struct {
	banners map[string]Banner
}

func newMemRepo() *memRepo {
	return &memRepo{banners: map[string]Banner{}}
}

func (m *memRepo) List(_ context.Context, activeOnly bool) ([]Banner, error) {
	out := []Banner{}
	for _, b := range m.banners {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memRepo) Create(_ context.Context, b *Banner) error {
	m.banners[b.ID] = *b
	return nil
}

func (m *memRepo) Update(_ context.Context, id string, set *core.Assignments) (*Banner, error) {
	b, ok := m.banners[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	_, args := set.UpdateQuery("banners", "id", id, "")
	for i, col := range set.Columns() {
		switch col {
		case "title":
			b.Title = args[i].(string)
		case "is_active":
			b.IsActive = args[i].(bool)
		case "display_order":
			b.Order = args[i].(int)
		}
	}
	m.banners[id] = b
	return &b, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.banners[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.banners, id)
	return nil
}

func (m *memRepo) Count(context.Context) (int, error) {
	return len(m.banners), nil
}

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := NewService(newMemRepo())

	b, err := svc.Create(context.Background(), CreateRequest{
		Title:    "Pure & Natural",
		Subtitle: "Farm fresh",
		Image:    "hero.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultBgColor, b.BgColor)
	assert.Equal(t, DefaultButtonText, b.ButtonText)
	assert.Equal(t, DefaultButtonLink, b.ButtonLink)
	assert.Equal(t, 0, b.Order)
	assert.True(t, b.IsActive)
}

func TestList_SortedByOrderAndFiltered(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	for _, req := range []CreateRequest{
		{Title: "third", Order: 2},
		{Title: "first", Order: 0},
		{Title: "second", Order: 1},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[2].Title)

	hidden := false
	_, err = svc.Update(ctx, all[1].ID, UpdateRequest{IsActive: &hidden})
	require.NoError(t, err)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, []string{"first", "third"}, []string{active[0].Title, active[1].Title})
}

func TestUpdate_Errors(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Update(context.Background(), "x", UpdateRequest{})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	title := "New"
	_, err = svc.Update(context.Background(), "missing", UpdateRequest{Title: &title})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestHandler_DeleteIsHard(t *testing.T) {
	repo := newMemRepo()
	h := NewHandler(NewService(repo))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Route("/admin", h.RegisterAdminRoutes)

	call := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	rec := call(http.MethodPost, "/admin/banners", `{"title":"A2 Desi Ghee","order":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var env struct {
		Data Banner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Data.Order)

	rec = call(http.MethodDelete, "/admin/banners/"+env.Data.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"message":"Banner deleted successfully"}}`,
		rec.Body.String(),
	)
	assert.Empty(t, repo.banners)

	rec = call(http.MethodDelete, "/admin/banners/"+env.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(http.MethodPost, "/admin/banners", `{"subtitle":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(http.MethodGet, "/banners", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
