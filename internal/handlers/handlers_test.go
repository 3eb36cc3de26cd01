package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psaxe.dev/internal/cache"
	"psaxe.dev/internal/config"
	"psaxe.dev/internal/models"
)

type testServer struct {
	handler  http.Handler
	registry *prometheus.Registry
	cache    *cache.MemoryCache
	cfg      *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	cfg := &config.Config{
		StaticDir:       dir,
		ProfileImage:    "img/profile.jpg",
		CacheTTL:        time.Minute,
		RevealThreshold: 0.1,
	}
	ts := &testServer{
		registry: prometheus.NewRegistry(),
		cache:    cache.NewMemoryCache(),
		cfg:      cfg,
	}
	h, err := SetupRoutes(cfg, Deps{Cache: ts.cache, Registry: ts.registry})
	require.NoError(t, err)
	ts.handler = h
	return ts
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHealth(t *testing.T) {
	rr := newTestServer(t).get(t, "/api/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestPanicIsLoggedAndCounted(t *testing.T) {
	ts := newTestServer(t)
	var buf bytes.Buffer
	h, err := SetupRoutes(ts.cfg, Deps{
		Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
		Cache:    ts.cache,
		Registry: ts.registry,
	})
	require.NoError(t, err)
	mux, ok := h.(*chi.Mux)
	require.True(t, ok)
	mux.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	ts.handler = mux

	rr := ts.get(t, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	logs := buf.String()
	assert.Contains(t, logs, "panic recovered")
	assert.Contains(t, logs, "msg=\"server error\"")
	assert.Contains(t, logs, "status=500")

	metrics := ts.get(t, "/metrics").Body.String()
	var found bool
	for _, line := range strings.Split(metrics, "\n") {
		if strings.HasPrefix(line, "portfolio_http_requests_total{") &&
			strings.Contains(line, `route="/boom"`) && strings.Contains(line, `status="500"`) {
			found = true
			assert.True(t, strings.HasSuffix(line, " 1"), line)
		}
	}
	assert.True(t, found, "no 500 sample for /boom")
}

func TestIndexRendersPage(t *testing.T) {
	rr := newTestServer(t).get(t, "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "Full Stack Developer")
	assert.Contains(t, body, `<span class="avatar-fallback">JD</span>`)
	assert.NotContains(t, body, `id="drawer"`)
}

func TestIndexMenuFlow(t *testing.T) {
	ts := newTestServer(t)

	closed := ts.get(t, "/").Body.String()
	assert.Contains(t, closed, `href="/?menu=open"`)

	open := ts.get(t, "/?menu=open").Body.String()
	assert.Contains(t, open, `id="drawer"`)
	assert.Contains(t, open, `href="/?menu=open&amp;nav=Projects"`)
	assert.Contains(t, open, `data-glyph="close"`)

	// following a drawer link closes the drawer and jumps to the section
	rr := ts.get(t, "/?menu=open&nav=Projects")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/#projects", rr.Header().Get("Location"))

	after := ts.get(t, rr.Header().Get("Location")).Body.String()
	assert.NotContains(t, after, `id="drawer"`)
	assert.Contains(t, after, `data-glyph="menu"`)
}

func TestIndexUnknownNavItem(t *testing.T) {
	rr := newTestServer(t).get(t, "/?menu=open&nav=Blog")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Unknown navigation item"}`, rr.Body.String())
}

func TestIndexPicksUpImageAddedAfterFirstRender(t *testing.T) {
	ts := newTestServer(t)

	before := ts.get(t, "/").Body.String()
	assert.Contains(t, before, `<span class="avatar-fallback">JD</span>`)

	require.NoError(t, os.MkdirAll(filepath.Join(ts.cfg.StaticDir, "img"), 0o755))
	require.NoError(t, os.WriteFile(ts.cfg.ProfileImagePath(), []byte("jpg"), 0o644))

	after := ts.get(t, "/").Body.String()
	assert.Contains(t, after, `<img class="avatar-image" src="/static/img/profile.jpg"`)
	assert.NotContains(t, after, `<span class="avatar-fallback">JD</span>`)

	require.NoError(t, os.Remove(ts.cfg.ProfileImagePath()))
	again := ts.get(t, "/").Body.String()
	assert.Contains(t, again, `<span class="avatar-fallback">JD</span>`)
}

func TestIndexUsesImageWhenPresent(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, os.MkdirAll(filepath.Join(ts.cfg.StaticDir, "img"), 0o755))
	require.NoError(t, os.WriteFile(ts.cfg.ProfileImagePath(), []byte("jpg"), 0o644))

	body := ts.get(t, "/").Body.String()
	assert.Contains(t, body, `src="/static/img/profile.jpg"`)
}

func TestProjectsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get(t, "/api/projects")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []projectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "ez-pay", list[0].Slug)
	assert.Equal(t, "streamsage", list[1].Slug)
	assert.Equal(t, "library-management-system", list[2].Slug)

	rr = ts.get(t, "/api/projects/streamsage")
	require.Equal(t, http.StatusOK, rr.Code)
	var one projectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &one))
	assert.Equal(t, "StreamSage", one.Title)

	rr = ts.get(t, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rr.Body.String())
}

func TestContentEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var content models.Content
	rr := ts.get(t, "/api/content")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &content))
	assert.Len(t, content.Nav, 4)
	assert.Len(t, content.Skills, 3)

	var skills []models.SkillCategory
	require.NoError(t, json.Unmarshal(ts.get(t, "/api/skills").Body.Bytes(), &skills))
	assert.Equal(t, "Frontend Development", skills[0].Name)

	var links models.Links
	require.NoError(t, json.Unmarshal(ts.get(t, "/api/links").Body.Bytes(), &links))
	assert.Len(t, links.Hero, 3)
	assert.Len(t, links.Contact, 2)
}

func TestStaticAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.get(t, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body{}", rr.Body.String())

	ts.get(t, "/api/health")
	rr = ts.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "portfolio_http_requests_total")
}
