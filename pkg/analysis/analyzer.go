// Package analysis computes social-network metrics over an immutable graph:
// betweenness centrality, bottleneck extraction, greedy-modularity community
// detection, and weak-link analysis. An Analyzer is a stateless set of pure
// queries over a graph fixed at construction, so it is safe for concurrent use.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/nmorrow/socialgraph/pkg/config"
	"github.com/nmorrow/socialgraph/pkg/graph"
	"github.com/nmorrow/socialgraph/pkg/logging"
	"github.com/nmorrow/socialgraph/pkg/metrics"
)

// Options configures an Analyzer. The zero value selects the spec defaults:
// default config thresholds, the process-wide logger, no metrics.
type Options struct {
	// Config supplies the analysis thresholds. Zero-valued fields fall back
	// to config.Default().
	Config config.Config
	// Logger receives the structured analysis log. Defaults to the
	// process-wide logger.
	Logger logging.Logger
	// Metrics, when set, records per-query counters and durations.
	Metrics *metrics.Registry
}

// Analyzer owns an immutable social graph and answers read-only metric
// queries over it.
type Analyzer struct {
	graph   *graph.Graph
	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// New builds the social graph from an adjacency mapping and wraps it in an
// Analyzer. Construction fails when the mapping is empty or malformed; no
// partial analyzer is produced.
func New(adjacency map[string][]string, opts Options) (*Analyzer, error) {
	logger := analyzerLogger(opts.Logger)

	g, err := graph.FromAdjacency(adjacency)
	if err != nil {
		logger.Error("failed to build social graph", logging.Error(err))
		return nil, err
	}
	return newAnalyzer(g, opts, logger), nil
}

// NewFromGraph wraps an already-built graph in an Analyzer. The graph must not
// be nil.
func NewFromGraph(g *graph.Graph, opts Options) (*Analyzer, error) {
	logger := analyzerLogger(opts.Logger)

	if g == nil {
		err := graph.BuildError(graph.ErrEmptyAdjacency)
		logger.Error("failed to build social graph", logging.Error(err))
		return nil, err
	}
	return newAnalyzer(g, opts, logger), nil
}

func newAnalyzer(g *graph.Graph, opts Options, logger logging.Logger) *Analyzer {
	a := &Analyzer{
		graph:   g,
		cfg:     opts.Config.WithDefaults(),
		logger:  logger,
		metrics: opts.Metrics,
	}

	a.logger.Info("built social graph",
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()))
	if a.metrics != nil {
		a.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())
	}
	return a
}

func analyzerLogger(logger logging.Logger) logging.Logger {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return logger.With(logging.AnalyzerID(uuid.New().String()))
}

// Graph returns the underlying immutable graph.
func (a *Analyzer) Graph() *graph.Graph {
	return a.graph
}

// IdentifyBottlenecks returns the nodes whose betweenness centrality strictly
// exceeds the graph maximum scaled by the configured bottleneck ratio. A graph
// that yields no centrality scores, or whose scores are all zero, has no
// bottlenecks.
func (a *Analyzer) IdentifyBottlenecks() (map[string]float64, error) {
	start := time.Now()

	scores, err := a.ComputeCentrality()
	if err != nil {
		a.logger.Error("bottleneck identification failed", logging.Error(err))
		a.record("bottlenecks", metrics.StatusError, start, 0)
		return nil, err
	}
	if len(scores) == 0 {
		a.logger.Warn("no bottlenecks found")
		a.record("bottlenecks", metrics.StatusEmpty, start, 0)
		return map[string]float64{}, nil
	}

	bottlenecks, threshold := thresholdFilter(scores, a.cfg.BottleneckRatio)

	a.logger.Info("identified bottleneck nodes",
		logging.ResultCount(len(bottlenecks)),
		logging.Float64("threshold", threshold))
	a.record("bottlenecks", metrics.StatusSuccess, start, len(bottlenecks))
	return bottlenecks, nil
}

// thresholdFilter keeps the scores strictly greater than max(scores)*ratio.
// With an all-zero score map the threshold is zero and nothing passes.
func thresholdFilter(scores map[string]float64, ratio float64) (map[string]float64, float64) {
	max := 0.0
	for _, score := range scores {
		if score > max {
			max = score
		}
	}
	threshold := max * ratio

	filtered := make(map[string]float64)
	for node, score := range scores {
		if score > threshold {
			filtered[node] = score
		}
	}
	return filtered, threshold
}

// AnalyzeWeakLinks returns every edge whose weight falls below the configured
// weak-link threshold, keyed by the canonical edge string. A graph with no
// edges has no weak links.
func (a *Analyzer) AnalyzeWeakLinks() (map[string]float64, error) {
	start := time.Now()

	edges := a.graph.Edges()
	if len(edges) == 0 {
		a.logger.Warn("graph has no edges to analyze")
		a.record("weak_links", metrics.StatusEmpty, start, 0)
		return map[string]float64{}, nil
	}

	weakLinks := make(map[string]float64)
	for _, edge := range edges {
		if edge.Weight < a.cfg.WeakLinkThreshold {
			weakLinks[edge.Key()] = edge.Weight
		}
	}

	a.logger.Info("analyzed weak links", logging.ResultCount(len(weakLinks)))
	a.record("weak_links", metrics.StatusSuccess, start, len(weakLinks))
	return weakLinks, nil
}

func (a *Analyzer) record(operation, status string, start time.Time, resultSize int) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordAnalysis(operation, status, time.Since(start), resultSize)
}
