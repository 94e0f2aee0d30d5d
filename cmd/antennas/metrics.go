package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/antennas/core"
)

const metricsNamespace = "antennas"

// graphMetrics exports the shape of the most recently loaded graph.
type graphMetrics struct {
	vertices     prometheus.Gauge
	edges        prometheus.Gauge
	perFrequency *prometheus.GaugeVec
	reloads      *prometheus.CounterVec
	loadSeconds  prometheus.Histogram
}

// newGraphMetrics creates the collectors and registers them on reg.
func newGraphMetrics(reg prometheus.Registerer) (*graphMetrics, error) {
	m := &graphMetrics{
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "vertices",
			Help:      "Antennas in the current graph",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "edges",
			Help:      "Same-frequency links in the current graph",
		}),
		perFrequency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "frequency_vertices",
			Help:      "Antennas per frequency in the current graph",
		}, []string{"frequency"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "watch",
			Name:      "reloads_total",
			Help:      "Grid reloads by result",
		}, []string{"result"}),
		loadSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "watch",
			Name:      "load_duration_seconds",
			Help:      "Time to parse the grid and build the graph",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{m.vertices, m.edges, m.perFrequency, m.reloads, m.loadSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records a successful load of g that took d.
func (m *graphMetrics) observe(g *core.Graph, d time.Duration) {
	st := g.Stats()
	m.vertices.Set(float64(st.VertexCount))
	m.edges.Set(float64(st.EdgeCount))
	m.perFrequency.Reset()
	for f, n := range st.PerFrequency {
		m.perFrequency.WithLabelValues(f.String()).Set(float64(n))
	}
	m.reloads.WithLabelValues("ok").Inc()
	m.loadSeconds.Observe(d.Seconds())
}

// failed records a reload that left the previous graph in place.
func (m *graphMetrics) failed() {
	m.reloads.WithLabelValues("error").Inc()
}
