package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/gridgraph"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

func (a *app) watchCmd() *cobra.Command {
	var (
		addr     string
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the graph whenever the grid file changes and export its metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.Watch.MetricsAddr = addr
			}
			if cmd.Flags().Changed("debounce") {
				a.cfg.Watch.Debounce = debounce
			}
			return a.watch(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "metrics-addr", "", "serve /metrics, /stats and /healthz on this address")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "coalesce file events within this window")

	return cmd
}

// graphStats is the JSON body of GET /stats.
type graphStats struct {
	Path         string         `json:"path"`
	Vertices     int            `json:"vertices"`
	Edges        int            `json:"edges"`
	PerFrequency map[string]int `json:"per_frequency"`
	LoadedAt     time.Time      `json:"loaded_at"`
}

// gridWatcher reloads one grid file on change.
type gridWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	metrics  *graphMetrics

	// current is the latest successfully loaded graph's summary.
	current atomic.Pointer[graphStats]
}

// reload parses the grid and publishes its stats. On failure the previous
// stats stay in place.
func (w *gridWatcher) reload() (*core.Graph, error) {
	start := time.Now()
	g, err := gridgraph.ParseFile(w.path)
	if err != nil {
		w.metrics.failed()
		w.logger.Warn("grid reload failed", slog.String("path", w.path), slog.String("error", err.Error()))
		return nil, err
	}
	elapsed := time.Since(start)
	w.metrics.observe(g, elapsed)

	st := g.Stats()
	per := make(map[string]int, len(st.PerFrequency))
	for f, n := range st.PerFrequency {
		per[f.String()] = n
	}
	w.current.Store(&graphStats{
		Path:         w.path,
		Vertices:     st.VertexCount,
		Edges:        st.EdgeCount,
		PerFrequency: per,
		LoadedAt:     time.Now(),
	})
	w.logger.Info("grid loaded",
		slog.String("path", w.path),
		slog.Int("vertices", st.VertexCount),
		slog.Int("edges", st.EdgeCount),
		slog.Int("frequencies", st.FrequencyCount),
		slog.Duration("elapsed", elapsed),
	)

	return g, nil
}

// run loads the grid once, then reloads it after each debounced burst of
// write or create events until ctx is done. The parent directory is watched
// so editors that replace the file by rename are followed.
func (w *gridWatcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	if err = fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	_, _ = w.reload()

	target := filepath.Clean(w.path)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			_, _ = w.reload()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}

// newRouter exposes the watcher over HTTP.
func newRouter(w *gridWatcher, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stats", func(c *gin.Context) {
		st := w.current.Load()
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no graph loaded"})
			return
		}
		c.JSON(http.StatusOK, st)
	})

	return r
}

// watch runs the file watcher and, when configured, the HTTP endpoint until
// ctx is cancelled.
func (a *app) watch(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	m, err := newGraphMetrics(reg)
	if err != nil {
		return err
	}
	w := &gridWatcher{
		path:     a.cfg.Grid,
		debounce: a.cfg.Watch.Debounce,
		logger:   a.logger,
		metrics:  m,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return w.run(ctx) })

	if addr := a.cfg.Watch.MetricsAddr; addr != "" {
		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:              addr,
			Handler:           newRouter(w, reg),
			ReadHeaderTimeout: shutdownTimeout,
		}
		eg.Go(func() error {
			a.logger.Info("serving metrics", slog.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	}

	return eg.Wait()
}
