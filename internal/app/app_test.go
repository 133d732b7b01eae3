package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"socialhub/pkg/config"
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	"socialhub/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := storage.NewLocal(dir, "/uploads")
	require.NoError(t, err)

	cfg := &config.Config{
		CORSOrigin:         "http://localhost:3000",
		JWTSecret:          "test-secret",
		ActivityTimestamps: "approximate",
	}
	return &App{
		cfg:        cfg,
		log:        logger.New(),
		store:      store,
		jwtService: jwt.NewService(cfg.JWTSecret),
	}, dir
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	a, _ := newTestApp(t)

	w := serve(a.Handler(), http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "OK", response["status"])
	assert.Equal(t, "Backend is running", response["message"])
}

func TestUnknownRoute(t *testing.T) {
	a, _ := newTestApp(t)

	w := serve(a.Handler(), http.MethodGet, "/api/nothing-here")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a, _ := newTestApp(t)
	h := a.Handler()

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/users/u1/activity"},
		{http.MethodPost, "/api/users/u1/activity/dismiss"},
		{http.MethodGet, "/api/posts/feed/u1"},
		{http.MethodPost, "/api/posts"},
		{http.MethodPost, "/api/posts/p1/like"},
		{http.MethodDelete, "/api/posts/p1"},
		{http.MethodPost, "/api/users/u1/follow/u2"},
		{http.MethodPut, "/api/users/u1/profile"},
		{http.MethodGet, "/api/users/suggestions/u1"},
	} {
		w := serve(h, route.method, route.path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	a, _ := newTestApp(t)
	h := a.Handler()

	serve(h, http.MethodGet, "/api/health")
	w := serve(h, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestServesLocalUploads(t *testing.T) {
	a, dir := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-2-cat.png"), []byte("png"), 0o644))

	w := serve(a.Handler(), http.MethodGet, "/uploads/1-2-cat.png")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	a, _ := newTestApp(t)

	w := serve(a.Handler(), http.MethodGet, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "/users/{user_id}/activity"))
}
