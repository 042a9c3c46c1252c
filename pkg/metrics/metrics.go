// Package metrics exposes prometheus instrumentation for the analysis
// queries. Recording is optional and never carries contractual result data.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis status label values
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

// Registry holds all metrics for the analysis engine.
type Registry struct {
	// AnalysesTotal counts query executions by operation and status.
	AnalysesTotal *prometheus.CounterVec
	// AnalysisDuration observes query execution time by operation.
	AnalysisDuration *prometheus.HistogramVec
	// AnalysisResultSize observes result sizes by operation.
	AnalysisResultSize *prometheus.HistogramVec

	// GraphNodesTotal gauges the size of the most recently built graph.
	GraphNodesTotal prometheus.Gauge
	// GraphEdgesTotal gauges the edge count of the most recently built graph.
	GraphEdgesTotal prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.AnalysesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_analyses_total",
			Help: "Total number of analysis queries executed",
		},
		[]string{"operation", "status"},
	)

	r.AnalysisDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialgraph_analysis_duration_seconds",
			Help:    "Analysis query duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"operation"},
	)

	r.AnalysisResultSize = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialgraph_analysis_result_size",
			Help:    "Number of entries returned per analysis query",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		},
		[]string{"operation"},
	)

	r.GraphNodesTotal = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_graph_nodes_total",
			Help: "Number of nodes in the analyzed graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_graph_edges_total",
			Help: "Number of edges in the analyzed graph",
		},
	)

	return r
}

// RecordAnalysis records one analysis query execution.
func (r *Registry) RecordAnalysis(operation, status string, duration time.Duration, resultSize int) {
	r.AnalysesTotal.WithLabelValues(operation, status).Inc()
	r.AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if status == StatusSuccess {
		r.AnalysisResultSize.WithLabelValues(operation).Observe(float64(resultSize))
	}
}

// SetGraphSize updates the graph size gauges.
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// Gatherer exposes the underlying prometheus registry for scraping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
