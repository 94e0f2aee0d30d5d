package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// newTestWatcher returns a watcher over a private copy of the test grid.
func newTestWatcher(t *testing.T) (*gridWatcher, *prometheus.Registry) {
	t.Helper()
	data, err := os.ReadFile(testGrid)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "antennas.txt")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	reg := prometheus.NewRegistry()
	m, err := newGraphMetrics(reg)
	require.NoError(t, err)

	return &gridWatcher{
		path:     path,
		debounce: 20 * time.Millisecond,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:  m,
	}, reg
}

func TestGraphMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := newGraphMetrics(reg)
	require.NoError(t, err)
	_, err = newGraphMetrics(reg)
	assert.Error(t, err)
}

func TestGridWatcher_Reload(t *testing.T) {
	w, _ := newTestWatcher(t)
	require.Nil(t, w.current.Load())

	g, err := w.reload()
	require.NoError(t, err)
	assert.Equal(t, 7, g.Len())

	m := w.metrics
	assert.Equal(t, 7.0, testutil.ToFloat64(m.vertices))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.edges))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.perFrequency.WithLabelValues("A")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.perFrequency.WithLabelValues("B")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reloads.WithLabelValues("ok")))

	st := w.current.Load()
	require.NotNil(t, st)
	assert.Equal(t, w.path, st.Path)
	assert.Equal(t, map[string]int{"A": 4, "B": 3}, st.PerFrequency)

	// A failed reload keeps the previous stats.
	require.NoError(t, os.Remove(w.path))
	_, err = w.reload()
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reloads.WithLabelValues("error")))
	assert.Same(t, st, w.current.Load())
	assert.Equal(t, 7.0, testutil.ToFloat64(m.vertices))
}

func TestRouter(t *testing.T) {
	w, reg := newTestWatcher(t)
	r := newRouter(w, reg)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get("/stats")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	_, err := w.reload()
	require.NoError(t, err)

	rec = get("/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var st graphStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 7, st.Vertices)
	assert.Equal(t, 9, st.Edges)

	rec = get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "antennas_graph_vertices 7")
	assert.Contains(t, rec.Body.String(), `antennas_graph_frequency_vertices{frequency="B"} 3`)
}

func TestGridWatcher_Run(t *testing.T) {
	w, _ := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	require.Eventually(t, func() bool {
		st := w.current.Load()
		return st != nil && st.Vertices == 7
	}, 5*time.Second, 10*time.Millisecond)

	// One more B antenna: 8 vertices, 3 more links.
	require.NoError(t, os.WriteFile(w.path, []byte(".A........\n.B..A.....\n....B.A...\n.......B..\n..A.....B.\n"), 0o600))
	require.Eventually(t, func() bool {
		st := w.current.Load()
		return st != nil && st.Vertices == 8 && st.Edges == 12
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchCommand_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--grid", testGrid, "watch", "--debounce", "10ms"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
