package analysis

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmorrow/socialgraph/pkg/graph"
	"github.com/nmorrow/socialgraph/pkg/logging"
	"github.com/nmorrow/socialgraph/pkg/metrics"
)

// buildBridgedClusters builds two tightly-knit groups of four joined by a
// single low-interaction edge between dan and erin.
func buildBridgedClusters(t *testing.T) *graph.Graph {
	t.Helper()

	clusterOne := []string{"alice", "bob", "carol", "dan"}
	clusterTwo := []string{"erin", "frank", "grace", "heidi"}

	b := graph.NewBuilder()
	for _, cluster := range [][]string{clusterOne, clusterTwo} {
		for i := 0; i < len(cluster); i++ {
			for j := i + 1; j < len(cluster); j++ {
				b.AddEdge(cluster[i], cluster[j], 0.8)
			}
		}
	}
	b.AddEdge("dan", "erin", 0.05)

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// TestAnalyzer_BridgedClusters runs all four queries over one realistic
// social network and cross-checks their findings.
func TestAnalyzer_BridgedClusters(t *testing.T) {
	registry := metrics.NewRegistry()
	analyzer, err := NewFromGraph(buildBridgedClusters(t), Options{
		Logger:  logging.NewNopLogger(),
		Metrics: registry,
	})
	require.NoError(t, err)

	scores, err := analyzer.ComputeCentrality()
	require.NoError(t, err)
	require.Len(t, scores, 8)

	// The bridge endpoints carry every cross-cluster shortest path
	assert.InDelta(t, scores["dan"], scores["erin"], 1e-9)
	for _, peripheral := range []string{"alice", "bob", "carol", "frank", "grace", "heidi"} {
		assert.Less(t, scores[peripheral], scores["dan"],
			"peripheral member %s should rank below the bridge", peripheral)
	}
	for node, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "score for %s", node)
		assert.LessOrEqual(t, score, 1.0, "score for %s", node)
	}

	bottlenecks, err := analyzer.IdentifyBottlenecks()
	require.NoError(t, err)
	assert.Len(t, bottlenecks, 2)
	assert.Contains(t, bottlenecks, "dan")
	assert.Contains(t, bottlenecks, "erin")

	communities, err := analyzer.DetectCommunities()
	require.NoError(t, err)
	require.Len(t, communities, 2)
	members := make(map[string]int)
	for id, group := range communities {
		for _, node := range group {
			members[node] = id
		}
	}
	assert.Equal(t, members["alice"], members["dan"], "cluster one should stay together")
	assert.Equal(t, members["erin"], members["heidi"], "cluster two should stay together")
	assert.NotEqual(t, members["dan"], members["erin"], "the weak bridge should split the clusters")

	weakLinks, err := analyzer.AnalyzeWeakLinks()
	require.NoError(t, err)
	require.Len(t, weakLinks, 1)
	assert.Equal(t, 0.05, weakLinks["(dan, erin)"])

	// Instrumentation saw every successful query
	for _, operation := range []string{"centrality", "bottlenecks", "communities", "weak_links"} {
		counter, err := registry.AnalysesTotal.GetMetricWithLabelValues(operation, metrics.StatusSuccess)
		require.NoError(t, err)

		var metric dto.Metric
		require.NoError(t, counter.Write(&metric))
		assert.GreaterOrEqual(t, metric.GetCounter().GetValue(), 1.0,
			"expected a success sample for %s", operation)
	}
}
