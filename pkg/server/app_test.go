package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TokenScope/pkg/config"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Server.Port = 0
	return cfg
}

func TestAppServesHealthAndMetrics(t *testing.T) {
	app := New(testConfig(t), nil, nil)
	e := app.Server().Echo()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppMetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	e := New(cfg, nil, nil).Server().Echo()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppRunClosesResourcesOnCancel(t *testing.T) {
	var closed []string
	first := closerFunc(func() error { closed = append(closed, "client"); return nil })
	second := closerFunc(func() error { closed = append(closed, "cache"); return errors.New("already closed") })

	app := New(testConfig(t), nil, nil, first, second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)
	assert.EqualError(t, err, "already closed")
	assert.Equal(t, []string{"client", "cache"}, closed)
}

func TestAppRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.Burst = 1
	cfg.Server.RateLimit.PerSecond = 0.001
	e := New(cfg, nil, nil).Server().Echo()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
